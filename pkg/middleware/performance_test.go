package middleware

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/twam/circular-buffer/pkg/common"
)

func TestPerformance_TracksHandlerTime(t *testing.T) {
	perf := NewPerformance(zap.NewNop())

	wrapped := perf.WithTick(func(ctx context.Context, tick common.Tick) {
		time.Sleep(time.Millisecond)
	})
	wrapped(context.Background(), common.Tick{})

	if perf.totalTickHandlerDur < time.Millisecond {
		t.Errorf("tick handler duration %v, want at least 1ms", perf.totalTickHandlerDur)
	}
	if perf.totalOutlierHandlerDur != 0 {
		t.Errorf("outlier handler duration %v, want 0", perf.totalOutlierHandlerDur)
	}
}

func TestTelemetry_CountsEvents(t *testing.T) {
	telemetry := NewTelemetry(zap.NewNop())

	tickHdl := telemetry.WithTick(NoopTickHdl)
	outlierHdl := telemetry.WithOutlier(NoopOutlierHdl)

	for i := 0; i < 3; i++ {
		tickHdl(context.Background(), common.Tick{})
	}
	outlierHdl(context.Background(), common.Outlier{})

	if telemetry.tickEventCounter != 3 {
		t.Errorf("tick counter = %d, want 3", telemetry.tickEventCounter)
	}
	if telemetry.outlierEventCounter != 1 {
		t.Errorf("outlier counter = %d, want 1", telemetry.outlierEventCounter)
	}
	if telemetry.windowEventCounter != 0 {
		t.Errorf("window counter = %d, want 0", telemetry.windowEventCounter)
	}
}
