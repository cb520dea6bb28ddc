package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Nodes      int64 // states visited, root children included
	Cutoffs    int64
	Duration   time.Duration
}

// Collector counts work done by one FindBestMove call.
type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Nodes:      m.nodes.Load(),
		Cutoffs:    m.cutoffs.Load(),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

var dummy Collector = dummyCollector{}

func NewDummyCollector() Collector {
	return dummy
}

func (dummyCollector) Start(depth, goroutines int) {}
func (dummyCollector) AddNode()                    {}
func (dummyCollector) AddCutoff()                  {}
func (dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
