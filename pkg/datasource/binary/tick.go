package binary

import (
	"time"

	"github.com/twam/circular-buffer/pkg/common"
	"github.com/twam/circular-buffer/pkg/utility/fixed"
)

// TickRecord is the on-disk tick layout. Timestamps are nanoseconds since
// the unix epoch, prices and volumes are raw float64.
type TickRecord struct {
	TimeStamp int64
	Bid       float64
	Ask       float64
	BidVolume float64
	AskVolume float64
}

func (r TickRecord) ToTick(tick *common.Tick) {
	tick.TimeStamp = time.Unix(0, r.TimeStamp)
	tick.Ask = fixed.FromFloat64(r.Ask)
	tick.Bid = fixed.FromFloat64(r.Bid)
	tick.AskVolume = fixed.FromFloat64(r.AskVolume)
	tick.BidVolume = fixed.FromFloat64(r.BidVolume)
}
