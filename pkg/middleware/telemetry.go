package middleware

import (
	"context"

	"go.uber.org/zap"

	"github.com/twam/circular-buffer/pkg/bus"
	"github.com/twam/circular-buffer/pkg/common"
)

// Telemetry counts the events flowing through the wrapped handlers.
type Telemetry struct {
	logger *zap.Logger

	tickEventCounter    int64
	outlierEventCounter int64
	windowEventCounter  int64
}

func NewTelemetry(logger *zap.Logger) *Telemetry {
	return &Telemetry{
		logger: logger,
	}
}

func (t *Telemetry) WithTick(handler bus.TickEventHandler) bus.TickEventHandler {
	return func(ctx context.Context, tick common.Tick) {
		t.tickEventCounter++
		handler(ctx, tick)
	}
}

func (t *Telemetry) WithOutlier(handler bus.OutlierEventHandler) bus.OutlierEventHandler {
	return func(ctx context.Context, outlier common.Outlier) {
		t.outlierEventCounter++
		handler(ctx, outlier)
	}
}

func (t *Telemetry) WithWindow(handler bus.WindowEventHandler) bus.WindowEventHandler {
	return func(ctx context.Context, snapshot common.WindowSnapshot) {
		t.windowEventCounter++
		handler(ctx, snapshot)
	}
}

func (t *Telemetry) PrintStatistics() {
	t.logger.Info("event telemetry",
		zap.Int64("tick_events", t.tickEventCounter),
		zap.Int64("outlier_events", t.outlierEventCounter),
		zap.Int64("window_events", t.windowEventCounter))
}
