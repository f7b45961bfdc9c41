// Package metrics instruments the tree search: node and cutoff counters
// per search, and CSV persistence of experiment records.
package metrics

import "time"

// SearchMetric summarizes one tree search.
type SearchMetric struct {
	Plies    int
	Nodes    int
	Leaves   int
	Cutoffs  int
	Duration time.Duration
}

// MoveRecord ties one search to its place in a game.
type MoveRecord struct {
	Game   int
	Step   int
	Player int
	Column int
	SearchMetric
}

// Collector accumulates counters during one search. The search runs on a
// single goroutine, so implementations need no synchronization.
type Collector interface {
	Start(plies int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
	// Last returns the metric of the most recently completed search, the
	// zero value if none has run yet.
	Last() SearchMetric
}

type collector struct {
	plies     int
	nodes     int
	leaves    int
	cutoffs   int
	startTime time.Time
	last      SearchMetric
}

// NewCollector returns a counting collector.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(plies int) {
	c.plies = plies
	c.nodes = 0
	c.leaves = 0
	c.cutoffs = 0
	c.startTime = time.Now()
}

func (c *collector) AddNode()   { c.nodes++ }
func (c *collector) AddLeaf()   { c.leaves++ }
func (c *collector) AddCutoff() { c.cutoffs++ }

func (c *collector) Complete() SearchMetric {
	c.last = SearchMetric{
		Plies:    c.plies,
		Nodes:    c.nodes,
		Leaves:   c.leaves,
		Cutoffs:  c.cutoffs,
		Duration: time.Since(c.startTime),
	}
	return c.last
}

func (c *collector) Last() SearchMetric { return c.last }

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for searches that need no
// instrumentation.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(plies int)        {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeaf()               {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
func (dummyCollector) Last() SearchMetric     { return SearchMetric{} }
