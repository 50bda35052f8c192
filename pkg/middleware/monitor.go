package middleware

import (
	"context"
	"log/slog"

	"github.com/twam/circular-buffer/pkg/bus"
	"github.com/twam/circular-buffer/pkg/common"
)

type MonitorFlags uint8

const (
	MonitorNone MonitorFlags = 1 << iota
	MonitorAll
	MonitorTicks
	MonitorOutliers
	MonitorWindows
)

// Monitor logs the events it is flagged to watch before passing them on.
type Monitor struct {
	flags MonitorFlags
}

func NewMonitor(flags MonitorFlags) *Monitor {
	return &Monitor{
		flags: flags,
	}
}

func (m *Monitor) WithTick(handler bus.TickEventHandler) bus.TickEventHandler {
	return func(ctx context.Context, tick common.Tick) {
		if m.flags&MonitorTicks != 0 || m.flags&MonitorAll != 0 {
			slog.Info("event", "tick", tick)
		}
		handler(ctx, tick)
	}
}

func (m *Monitor) WithOutlier(handler bus.OutlierEventHandler) bus.OutlierEventHandler {
	return func(ctx context.Context, outlier common.Outlier) {
		if m.flags&MonitorOutliers != 0 || m.flags&MonitorAll != 0 {
			slog.Info("event", "outlier", outlier)
		}
		handler(ctx, outlier)
	}
}

func (m *Monitor) WithWindow(handler bus.WindowEventHandler) bus.WindowEventHandler {
	return func(ctx context.Context, snapshot common.WindowSnapshot) {
		if m.flags&MonitorWindows != 0 || m.flags&MonitorAll != 0 {
			slog.Info("event", "window", snapshot)
		}
		handler(ctx, snapshot)
	}
}
