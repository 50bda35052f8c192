package binary

import (
	"fmt"
	"io"
	"time"

	"github.com/twam/circular-buffer/pkg/common"
	"github.com/twam/circular-buffer/pkg/utility"
)

const (
	invalidIndex            = -1
	tickReaderComponentName = "datasource.binary.reader"
)

// TickReader iterates the ticks of one symbol within a time range. The
// underlying file must be sorted by timestamp; the start index is found
// with a binary search on the first call.
type TickReader struct {
	source *Source[TickRecord]

	symbol string
	from   int64
	to     int64
	idx    int64
}

func NewTickReader(source *Source[TickRecord], symbol string, from, to time.Time) *TickReader {
	return &TickReader{
		source: source,
		symbol: symbol,
		from:   from.UnixNano(),
		to:     to.UnixNano(),
		idx:    invalidIndex,
	}
}

func (t *TickReader) GetNext() (common.Tick, error) {

	var tick common.Tick
	var record TickRecord

	if t.idx == invalidIndex {
		if err := t.lookupStartIndex(); err != nil {
			return tick, err
		}
	}

	if err := t.source.Read(t.idx, &record); err != nil {
		return tick, fmt.Errorf("error reading record at index %d: %w", t.idx, err)
	}
	t.idx++

	if record.TimeStamp < t.from {
		return tick, fmt.Errorf("timestamp is not from the proposed range")
	}

	if record.TimeStamp > t.to {
		return tick, io.EOF
	}

	record.ToTick(&tick)

	tick.Source = tickReaderComponentName
	tick.Symbol = t.symbol
	tick.SessionID = utility.GetSessionID()
	tick.TraceID = utility.CreateTraceID()

	return tick, nil
}

func (t *TickReader) lookupStartIndex() error {
	entryCount, err := t.source.EntryCount()
	if err != nil {
		return fmt.Errorf("error getting entry count: %w", err)
	}

	if entryCount == 0 {
		return fmt.Errorf("entry count is zero")
	}

	var record TickRecord

	low := int64(0)
	high := entryCount - 1

	for low <= high {
		mid := (low + high) / 2

		if err := t.source.Read(mid, &record); err != nil {
			return fmt.Errorf("error reading record at index %d: %w", mid, err)
		}

		if record.TimeStamp < t.from {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	if low >= entryCount {
		return fmt.Errorf("no record found with timestamp >= from")
	}

	t.idx = low
	return nil
}
