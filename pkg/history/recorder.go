package history

import (
	"log/slog"
	"time"

	"github.com/twam/circular-buffer/pkg/circular"
	"github.com/twam/circular-buffer/pkg/utility"
)

// Entry is a single recorded value with its identity stamps.
type Entry[T any] struct {
	SessionID utility.SessionID `json:"sid"`
	TraceID   utility.TraceID   `json:"tid"`
	At        time.Time         `json:"at"`
	Value     T                 `json:"value"`
}

// Recorder keeps the last N recorded values. Once full, recording a new
// value silently drops the oldest entry; total recorded count is tracked
// separately so callers can tell how much history was discarded.
type Recorder[T any] struct {
	buf      *circular.Buffer[Entry[T]]
	recorded uint64
}

func NewRecorder[T any](capacity int) *Recorder[T] {
	if capacity <= 0 {
		panic("capacity must be positive")
	}
	return &Recorder[T]{
		buf: circular.NewBuffer[Entry[T]](capacity),
	}
}

func (r *Recorder[T]) Record(value T) Entry[T] {
	entry := Entry[T]{
		SessionID: utility.GetSessionID(),
		TraceID:   utility.CreateTraceID(),
		At:        time.Now(),
		Value:     value,
	}

	if r.buf.Full() {
		slog.Debug("history full, dropping oldest entry", "trace_id", r.buf.Front().TraceID)
	}
	r.buf.PushBack(entry)
	r.recorded++

	return entry
}

func (r *Recorder[T]) Len() int {
	return r.buf.Size()
}

func (r *Recorder[T]) Capacity() int {
	return r.buf.Capacity()
}

// Recorded returns the total number of recorded values, including those
// already dropped from the window.
func (r *Recorder[T]) Recorded() uint64 {
	return r.recorded
}

// Dropped returns how many entries were discarded to make room.
func (r *Recorder[T]) Dropped() uint64 {
	return r.recorded - uint64(r.buf.Size())
}

// Oldest returns the oldest surviving entry. The recorder must not be empty.
func (r *Recorder[T]) Oldest() Entry[T] {
	return r.buf.Front()
}

// Newest returns the most recent entry. The recorder must not be empty.
func (r *Recorder[T]) Newest() Entry[T] {
	return r.buf.Back()
}

// Snapshot returns surviving entries oldest-to-newest.
func (r *Recorder[T]) Snapshot() []Entry[T] {
	return r.buf.Slice()
}

// Replay walks surviving entries oldest-to-newest without copying.
func (r *Recorder[T]) Replay(f func(Entry[T])) {
	for it := r.buf.CBegin(); !it.Eq(r.buf.CEnd()); it.Next() {
		f(it.Value())
	}
}

func (r *Recorder[T]) Clear() {
	r.buf.Clear()
	r.recorded = 0
}
