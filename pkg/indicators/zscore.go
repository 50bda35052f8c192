package indicators

import (
	"errors"

	"github.com/twam/circular-buffer/pkg/utility/fixed"
	"github.com/twam/circular-buffer/pkg/window"
)

var ErrNotReady = errors.New("not enough data")

// ZScore measures how many standard deviations the latest value sits from
// the rolling mean of its window.
type ZScore struct {
	data *window.Stats
}

func NewZScore(windowSize int) *ZScore {
	return &ZScore{
		data: window.NewStats(windowSize),
	}
}

func (z *ZScore) AddPoint(p fixed.Point) {
	z.data.Push(p)
}

func (z *ZScore) Value() (fixed.Point, error) {
	if !z.IsReady() {
		return fixed.Point{}, ErrNotReady
	}

	stdDev := z.data.StdDev()
	if stdDev.IsZero() {
		return fixed.Point{}, ErrNotReady
	}

	return z.data.Latest().Sub(z.data.Mean()).Div(stdDev), nil
}

// Window exposes the rolling window feeding the indicator.
func (z *ZScore) Window() *window.Stats {
	return z.data
}

func (z *ZScore) IsReady() bool {
	return z.data.Ready()
}

func (z *ZScore) Reset() {
	z.data.Reset()
}
