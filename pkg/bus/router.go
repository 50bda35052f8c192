package bus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/twam/circular-buffer/pkg/common"
)

type event struct {
	id   EventId
	data interface{}
}

// Router moves events from producers to their handlers through a bounded
// queue. Post never blocks; once the queue is full, events are rejected
// and counted.
type Router struct {
	events chan event

	OnTick    TickEventHandler
	OnOutlier OutlierEventHandler
	OnWindow  WindowEventHandler

	runTime       atomic.Int64
	postCount     atomic.Uint64
	postFails     atomic.Uint64
	dispatchCount atomic.Uint64
	dispatchFails atomic.Uint64
}

func NewRouter(eventCapacity int) *Router {
	return &Router{
		events: make(chan event, eventCapacity),
	}
}

func (r *Router) Post(id EventId, data interface{}) error {
	select {
	case r.events <- event{id, data}:
		r.postCount.Add(1)
		return nil
	default:
		r.postFails.Add(1)
		return errors.New("event capacity reached")
	}
}

// Exec drains the queue until the context is cancelled. The returned
// channel delivers the terminal error.
func (r *Router) Exec(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	go func() {
		start := time.Now()
		defer func() {
			r.runTime.Add(int64(time.Since(start)))
		}()

		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case ev := <-r.events:
				r.handle(ev)
			}
		}
	}()

	return done
}

// ExecLoop behaves like Exec but invokes doOnceCb whenever the queue is
// idle, ending once the callback fails. Data pumps use the callback to
// feed the next event in.
func (r *Router) ExecLoop(ctx context.Context, doOnceCb func() error) <-chan error {
	done := make(chan error, 1)

	go func() {
		start := time.Now()
		defer func() {
			r.runTime.Add(int64(time.Since(start)))
		}()

		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case ev := <-r.events:
				r.handle(ev)
			default:
				if err := doOnceCb(); err != nil {
					r.drain()
					done <- err
					return
				}
			}
		}
	}()

	return done
}

func (r *Router) Statistics() Statistics {
	runTime := time.Duration(r.runTime.Load())

	var throughput float64
	if runTime > 0 {
		throughput = float64(r.dispatchCount.Load()) / runTime.Seconds()
	}

	return Statistics{
		RunTime:       runTime,
		PostCount:     r.postCount.Load(),
		PostFails:     r.postFails.Load(),
		DispatchCount: r.dispatchCount.Load(),
		DispatchFails: r.dispatchFails.Load(),
		Throughput:    throughput,
	}
}

func (r *Router) handle(ev event) {
	r.dispatchCount.Add(1)
	if err := r.dispatch(ev); err != nil {
		r.dispatchFails.Add(1)
		slog.Warn("dispatch failed", "error", err, "event", ev.id.String())
	}
}

// drain dispatches whatever is still queued, so a finished pump does not
// lose its trailing events.
func (r *Router) drain() {
	for {
		select {
		case ev := <-r.events:
			r.handle(ev)
		default:
			return
		}
	}
}

func (r *Router) dispatch(ev event) error {
	ctx := context.Background()

	switch ev.id {
	case TickEvent:
		tick, ok := ev.data.(common.Tick)
		if !ok {
			return errors.New("invalid type assertion for tick event")
		}
		if r.OnTick != nil {
			r.OnTick(ctx, tick)
		} else {
			slog.Debug("tick handler is nil")
		}
	case OutlierEvent:
		outlier, ok := ev.data.(common.Outlier)
		if !ok {
			return errors.New("invalid type assertion for outlier event")
		}
		if r.OnOutlier != nil {
			r.OnOutlier(ctx, outlier)
		} else {
			slog.Debug("outlier handler is nil")
		}
	case WindowEvent:
		snapshot, ok := ev.data.(common.WindowSnapshot)
		if !ok {
			return errors.New("invalid type assertion for window event")
		}
		if r.OnWindow != nil {
			r.OnWindow(ctx, snapshot)
		} else {
			slog.Debug("window handler is nil")
		}
	default:
		return fmt.Errorf("unknown event id %d", ev.id)
	}
	return nil
}
