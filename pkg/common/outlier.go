package common

import (
	"go.uber.org/zap/zapcore"

	"github.com/twam/circular-buffer/pkg/utility/fixed"
)

// Outlier flags a tick whose mid price sits unusually far from the
// rolling mean of its window.
type Outlier struct {
	Tick   Tick        `json:"tick"`
	ZScore fixed.Point `json:"zscore"`
	Mean   fixed.Point `json:"mean"`
	StdDev fixed.Point `json:"std_dev"`
}

func (o Outlier) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("tick", o.Tick); err != nil {
		return err
	}
	enc.AddString("zscore", o.ZScore.String())
	enc.AddString("mean", o.Mean.String())
	enc.AddString("std_dev", o.StdDev.String())
	return nil
}
