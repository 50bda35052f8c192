package common

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/twam/circular-buffer/pkg/utility/fixed"
)

// WindowSnapshot is a point-in-time summary of a rolling window,
// published periodically so consumers need not track every tick.
type WindowSnapshot struct {
	Symbol string      `json:"symbol"`
	Size   int         `json:"size"`
	Mean   fixed.Point `json:"mean"`
	StdDev fixed.Point `json:"std_dev"`
	Min    fixed.Point `json:"min"`
	Max    fixed.Point `json:"max"`
	At     time.Time   `json:"at"`
}

func (s WindowSnapshot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("symbol", s.Symbol)
	enc.AddInt("size", s.Size)
	enc.AddString("mean", s.Mean.String())
	enc.AddString("std_dev", s.StdDev.String())
	enc.AddString("min", s.Min.String())
	enc.AddString("max", s.Max.String())
	enc.AddTime("at", s.At)
	return nil
}
