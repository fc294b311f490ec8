package metrics

import (
	"sync/atomic"
	"time"
)

// MatchMetric sums up one finished match.
type MatchMetric struct {
	Shots     int
	Hits      int
	PowerUsed bool
	Won       bool
	StartTime time.Time
	Duration  time.Duration
}

// Collector accumulates per-turn counts over one match. Counters are
// atomic so a watcher goroutine may read mid-match.
type Collector interface {
	Start()
	AddShot()
	AddHit()
	SetPowerUsed()
	Complete(won bool) MatchMetric
}

type collector struct {
	startTime time.Time
	shots     atomic.Int32
	hits      atomic.Int32
	powerUsed atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

func (c *collector) AddShot() {
	c.shots.Add(1)
}

func (c *collector) AddHit() {
	c.hits.Add(1)
}

func (c *collector) SetPowerUsed() {
	c.powerUsed.Store(true)
}

func (c *collector) Complete(won bool) MatchMetric {
	return MatchMetric{
		Shots:     int(c.shots.Load()),
		Hits:      int(c.hits.Load()),
		PowerUsed: c.powerUsed.Load(),
		Won:       won,
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                        {}
func (c *dummyCollector) AddShot()                      {}
func (c *dummyCollector) AddHit()                       {}
func (c *dummyCollector) SetPowerUsed()                 {}
func (c *dummyCollector) Complete(won bool) MatchMetric { return MatchMetric{} }
