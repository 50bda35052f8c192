package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/twam/circular-buffer/internal/dbg"
	"github.com/twam/circular-buffer/pkg/bus"
	"github.com/twam/circular-buffer/pkg/data/duckdb"
	"github.com/twam/circular-buffer/pkg/datasource"
	"github.com/twam/circular-buffer/pkg/datasource/binary"
	"github.com/twam/circular-buffer/pkg/datasource/synthetic"
	"github.com/twam/circular-buffer/pkg/middleware"
)

func buildSource(cfg config, logger *zap.Logger) (datasource.TickSource, func(), error) {
	if cfg.sourcePath == "" {
		logger.Info("using synthetic ticks",
			zap.Int64("steps", cfg.syntheticSteps),
			zap.Int64("seed", cfg.syntheticSeed))
		gen := synthetic.NewTickGenerator(
			cfg.symbol,
			rand.New(rand.NewSource(cfg.syntheticSeed)),
			time.Now().UTC(),
			1.1000, 0.0002, 0.05, 0.2, 1.0/252/86400,
			cfg.syntheticSteps)
		return gen, func() {}, nil
	}

	from, err := time.Parse(timeLayout, cfg.from)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid -from: %w", err)
	}
	to, err := time.Parse(timeLayout, cfg.to)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid -to: %w", err)
	}

	source := binary.NewSource[binary.TickRecord](cfg.sourcePath)
	if err := source.Open(); err != nil {
		return nil, nil, err
	}
	return binary.NewTickReader(source, cfg.symbol, from, to), source.Close, nil
}

func saveSnapshot(ctx context.Context, cfg config, logger *zap.Logger, a *analyzer) error {
	store := duckdb.NewStore(cfg.duckdbPath)
	if err := store.Connect(); err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveSnapshot(ctx, cfg.symbol, a.recorder.Snapshot()); err != nil {
		return err
	}

	count, err := store.CountTicks(ctx, cfg.symbol)
	if err != nil {
		return err
	}
	logger.Info("snapshot saved",
		zap.String("path", cfg.duckdbPath),
		zap.Int64("total_rows", count))
	return nil
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	source, closeSource, err := buildSource(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	monitor := middleware.NewMonitor(middleware.MonitorWindows)
	telemetry := middleware.NewTelemetry(logger)
	performance := middleware.NewPerformance(logger)

	router := bus.NewRouter(routerEventCapacity)
	a := newAnalyzer(logger, router, cfg)

	router.OnTick = middleware.Chain(telemetry.WithTick, performance.WithTick, monitor.WithTick)(a.OnTick)
	router.OnOutlier = telemetry.WithOutlier(monitor.WithOutlier(a.OnOutlier))
	router.OnWindow = telemetry.WithWindow(monitor.WithWindow(a.OnWindow))

	defer telemetry.PrintStatistics()
	defer performance.PrintStatistics()
	defer func() {
		router.Statistics().Print()
	}()

	err = <-router.ExecLoop(ctx, datasource.CreateTickDispatcher(router, source))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("replay finished",
		zap.String("symbol", cfg.symbol),
		zap.Uint64("ticks", a.recorder.Recorded()),
		zap.Uint64("dropped", a.recorder.Dropped()),
		zap.Int("alerts", a.alerts),
		zap.Object("window", a.zscore.Window()))

	if cfg.duckdbPath != "" && a.recorder.Len() > 0 {
		return saveSnapshot(context.Background(), cfg, logger, a)
	}
	return nil
}

func main() {
	cfg := parseFlags()

	logger := dbg.NewLogger(cfg.mode)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("tickwin failed", zap.Error(err))
	}
	logger.Info("done")
}
