package datasource

import (
	"context"
	"errors"
	"io"

	"github.com/twam/circular-buffer/pkg/circular"
	"github.com/twam/circular-buffer/pkg/common"
)

// TickSource yields ticks one at a time. Implementations return
// io.EOF once exhausted.
type TickSource interface {
	GetNext() (common.Tick, error)
}

// CollectWindow drains a source into a ring buffer of the given capacity.
// Once the source outgrows the window, older ticks are overwritten, so
// the result holds the newest `capacity` ticks in order.
func CollectWindow(src TickSource, capacity int) (*circular.Buffer[common.Tick], error) {
	buf := circular.NewBuffer[common.Tick](capacity)
	for {
		tick, err := src.GetNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			return buf, err
		}
		buf.PushBack(tick)
	}
}

// Stream pumps a source into handler until the source is exhausted, the
// handler fails, or the context is cancelled.
func Stream(ctx context.Context, src TickSource, handler func(common.Tick) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tick, err := src.GetNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := handler(tick); err != nil {
			return err
		}
	}
}
