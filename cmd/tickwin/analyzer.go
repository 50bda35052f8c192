package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/twam/circular-buffer/pkg/bus"
	"github.com/twam/circular-buffer/pkg/common"
	"github.com/twam/circular-buffer/pkg/history"
	"github.com/twam/circular-buffer/pkg/indicators"
)

// analyzer feeds each tick's mid price into a rolling z-score window,
// records the tick, and publishes outliers and periodic window summaries
// back onto the bus.
type analyzer struct {
	logger *zap.Logger
	router *bus.Router

	zscore    *indicators.ZScore
	recorder  *history.Recorder[common.Tick]
	threshold float64

	snapshotEvery uint64
	ticksSeen     uint64
	alerts        int
}

func newAnalyzer(logger *zap.Logger, router *bus.Router, cfg config) *analyzer {
	return &analyzer{
		logger:        logger,
		router:        router,
		zscore:        indicators.NewZScore(cfg.windowSize),
		recorder:      history.NewRecorder[common.Tick](cfg.historyDepth),
		threshold:     cfg.threshold,
		snapshotEvery: cfg.snapshotEvery,
	}
}

func (a *analyzer) OnTick(_ context.Context, tick common.Tick) {
	a.zscore.AddPoint(tick.Mid())
	a.recorder.Record(tick)
	a.ticksSeen++

	if a.snapshotEvery > 0 && a.ticksSeen%a.snapshotEvery == 0 && a.zscore.IsReady() {
		if err := a.router.Post(bus.WindowEvent, a.snapshot(tick.Symbol)); err != nil {
			a.logger.Warn("unable to post window snapshot", zap.Error(err))
		}
	}

	z, err := a.zscore.Value()
	if err != nil {
		if !errors.Is(err, indicators.ErrNotReady) {
			a.logger.Warn("z-score failed", zap.Error(err))
		}
		return
	}

	if v, _ := z.Abs().Float64(); v >= a.threshold {
		w := a.zscore.Window()
		outlier := common.Outlier{
			Tick:   tick,
			ZScore: z,
			Mean:   w.Mean(),
			StdDev: w.StdDev(),
		}
		if err := a.router.Post(bus.OutlierEvent, outlier); err != nil {
			a.logger.Warn("unable to post outlier", zap.Error(err))
		}
	}
}

func (a *analyzer) OnOutlier(_ context.Context, outlier common.Outlier) {
	a.alerts++
	a.logger.Info("outlier tick", zap.Object("outlier", outlier))
}

func (a *analyzer) OnWindow(_ context.Context, snapshot common.WindowSnapshot) {
	a.logger.Debug("window summary", zap.Object("window", snapshot))
}

func (a *analyzer) snapshot(symbol string) common.WindowSnapshot {
	w := a.zscore.Window()
	return common.WindowSnapshot{
		Symbol: symbol,
		Size:   w.Size(),
		Mean:   w.Mean(),
		StdDev: w.StdDev(),
		Min:    w.Min(),
		Max:    w.Max(),
		At:     time.Now().UTC(),
	}
}
