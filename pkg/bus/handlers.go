package bus

import (
	"context"

	"github.com/twam/circular-buffer/pkg/common"
)

type EventHandler[T any] = func(context.Context, T)

type TickEventHandler EventHandler[common.Tick]
type OutlierEventHandler EventHandler[common.Outlier]
type WindowEventHandler EventHandler[common.WindowSnapshot]

func MergeHandlers[T any](handlers ...EventHandler[T]) EventHandler[T] {
	return func(ctx context.Context, event T) {
		for _, handler := range handlers {
			handler(ctx, event)
		}
	}
}
