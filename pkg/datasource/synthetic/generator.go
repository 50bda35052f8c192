package synthetic

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/twam/circular-buffer/pkg/common"
	"github.com/twam/circular-buffer/pkg/utility"
	"github.com/twam/circular-buffer/pkg/utility/fixed"
)

const (
	tickGeneratorComponentName = "datasource.synthetic.generator"
)

// TickGenerator produces a deterministic stream of synthetic ticks from a
// seeded RNG. Prices follow a geometric random walk; spread and volumes
// jitter around configurable baselines.
type TickGenerator struct {
	symbol string
	rng    *rand.Rand

	mu     float64
	sigma  float64
	deltaT float64
	steps  int64
	t      int64

	avgTickInterval time.Duration
	avgVolume       float64
	volumeVariance  float64

	spread    float64
	lastTime  time.Time
	lastPrice float64

	priceDigits  int
	volumeDigits int
}

func NewTickGenerator(symbol string, rng *rand.Rand, startTime time.Time, startPrice, spread, mu, sigma, deltaT float64, steps int64) *TickGenerator {
	return &TickGenerator{
		symbol: symbol,
		rng:    rng,

		mu:     mu,
		sigma:  sigma,
		deltaT: deltaT,
		steps:  steps,

		avgTickInterval: 333 * time.Millisecond,
		avgVolume:       100,
		volumeVariance:  0.5,

		spread:    spread / 2,
		lastTime:  startTime,
		lastPrice: startPrice,

		priceDigits:  5,
		volumeDigits: 2,
	}
}

func (g *TickGenerator) SetTickParameters(avgInterval time.Duration, avgVolume, volumeVariance float64) {
	g.avgTickInterval = avgInterval
	g.avgVolume = avgVolume
	g.volumeVariance = volumeVariance
}

func (g *TickGenerator) SetDigits(priceDigits, volumeDigits int) {
	g.priceDigits = priceDigits
	g.volumeDigits = volumeDigits
}

func (g *TickGenerator) GetNext() (common.Tick, error) {
	var tick common.Tick

	if g.t >= g.steps {
		return tick, io.EOF
	}

	z := g.rng.NormFloat64()
	deltaLog := (g.mu-0.5*g.sigma*g.sigma)*g.deltaT + g.sigma*math.Sqrt(g.deltaT)*z
	g.lastPrice *= math.Exp(deltaLog)

	g.lastTime = g.lastTime.Add(g.tickInterval())
	g.t++

	askVolume, bidVolume := g.volumes()

	tick.Ask = fixed.FromFloat64(g.lastPrice + g.spread).Rescale(g.priceDigits)
	tick.Bid = fixed.FromFloat64(g.lastPrice - g.spread).Rescale(g.priceDigits)
	tick.AskVolume = fixed.FromFloat64(askVolume).Rescale(g.volumeDigits)
	tick.BidVolume = fixed.FromFloat64(bidVolume).Rescale(g.volumeDigits)
	tick.TimeStamp = g.lastTime

	tick.Source = tickGeneratorComponentName
	tick.Symbol = g.symbol
	tick.SessionID = utility.GetSessionID()
	tick.TraceID = utility.CreateTraceID()

	return tick, nil
}

func (g *TickGenerator) tickInterval() time.Duration {
	mean := float64(g.avgTickInterval.Nanoseconds())
	interval := g.rng.ExpFloat64() * mean

	// Clamp so the clock neither stalls nor jumps.
	if interval < 0.5*mean {
		interval = 0.5 * mean
	} else if interval > 3*mean {
		interval = 3 * mean
	}

	return time.Duration(int64(interval))
}

func (g *TickGenerator) volumes() (askVolume, bidVolume float64) {
	askVolume = g.avgVolume * math.Exp(g.rng.NormFloat64()*g.volumeVariance)
	bidVolume = g.avgVolume * math.Exp(g.rng.NormFloat64()*g.volumeVariance)

	if askVolume < 1 {
		askVolume = 1
	}
	if bidVolume < 1 {
		bidVolume = 1
	}
	return askVolume, bidVolume
}
