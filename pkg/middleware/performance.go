package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/twam/circular-buffer/pkg/bus"
	"github.com/twam/circular-buffer/pkg/common"
)

// Performance accumulates time spent inside the wrapped handlers.
type Performance struct {
	logger *zap.Logger

	totalTickHandlerDur    time.Duration
	totalOutlierHandlerDur time.Duration
	totalWindowHandlerDur  time.Duration
}

func NewPerformance(logger *zap.Logger) *Performance {
	return &Performance{
		logger: logger,
	}
}

func (p *Performance) WithTick(handler bus.TickEventHandler) bus.TickEventHandler {
	return func(ctx context.Context, tick common.Tick) {
		startTime := time.Now()
		handler(ctx, tick)
		p.totalTickHandlerDur += time.Since(startTime)
	}
}

func (p *Performance) WithOutlier(handler bus.OutlierEventHandler) bus.OutlierEventHandler {
	return func(ctx context.Context, outlier common.Outlier) {
		startTime := time.Now()
		handler(ctx, outlier)
		p.totalOutlierHandlerDur += time.Since(startTime)
	}
}

func (p *Performance) WithWindow(handler bus.WindowEventHandler) bus.WindowEventHandler {
	return func(ctx context.Context, snapshot common.WindowSnapshot) {
		startTime := time.Now()
		handler(ctx, snapshot)
		p.totalWindowHandlerDur += time.Since(startTime)
	}
}

func (p *Performance) PrintStatistics() {
	p.logger.Info("handler performance",
		zap.Duration("tick_handler_total", p.totalTickHandlerDur),
		zap.Duration("outlier_handler_total", p.totalOutlierHandlerDur),
		zap.Duration("window_handler_total", p.totalWindowHandlerDur))
}
