package main

import (
	"flag"
	"time"
)

type config struct {
	mode   string
	symbol string

	sourcePath string
	from       string
	to         string

	syntheticSteps int64
	syntheticSeed  int64

	windowSize int
	threshold  float64

	snapshotEvery uint64

	historyDepth int
	duckdbPath   string
}

const timeLayout = "2006-01-02"
const routerEventCapacity = 256

var defaultFrom = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
var defaultTo = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.mode, "mode", "dev", "logger mode, dev or prod")
	flag.StringVar(&cfg.symbol, "symbol", "eurusd", "symbol to replay")

	flag.StringVar(&cfg.sourcePath, "source", "", "binary tick file, synthetic ticks are generated when empty")
	flag.StringVar(&cfg.from, "from", defaultFrom.Format(timeLayout), "replay range start")
	flag.StringVar(&cfg.to, "to", defaultTo.Format(timeLayout), "replay range end")

	flag.Int64Var(&cfg.syntheticSteps, "steps", 10_000, "synthetic tick count")
	flag.Int64Var(&cfg.syntheticSeed, "seed", 42, "synthetic rng seed")

	flag.IntVar(&cfg.windowSize, "window", 256, "rolling window size")
	flag.Float64Var(&cfg.threshold, "threshold", 3.0, "z-score alert threshold")

	flag.Uint64Var(&cfg.snapshotEvery, "snapshot-every", 1000, "ticks between window summaries, 0 disables")

	flag.IntVar(&cfg.historyDepth, "history", 4096, "tick history depth")
	flag.StringVar(&cfg.duckdbPath, "duckdb", "", "duckdb file for history snapshots, disabled when empty")

	flag.Parse()
	return cfg
}
