package common

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/twam/circular-buffer/pkg/utility"
	"github.com/twam/circular-buffer/pkg/utility/fixed"
)

type Tick struct {
	Ask       fixed.Point `json:"ask"`
	Bid       fixed.Point `json:"bid"`
	AskVolume fixed.Point `json:"ask_volume"`
	BidVolume fixed.Point `json:"bid_volume"`

	Source    string            `json:"src,omitempty"`
	Symbol    string            `json:"symbol,omitempty"`
	SessionID utility.SessionID `json:"sid,omitempty"`
	TraceID   utility.TraceID   `json:"tid,omitempty"`
	TimeStamp time.Time         `json:"ts"`
}

// Mid returns the price halfway between ask and bid.
func (t Tick) Mid() fixed.Point {
	return t.Ask.Add(t.Bid).DivInt(2)
}

func (t Tick) Volume() fixed.Point {
	return t.AskVolume.Add(t.BidVolume)
}

func (t Tick) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("symbol", t.Symbol)
	enc.AddString("ask", t.Ask.String())
	enc.AddString("bid", t.Bid.String())
	enc.AddTime("ts", t.TimeStamp)
	return nil
}
