package metrics

import (
	"fmt"
	"time"

	"nim/searcher"

	"github.com/samber/lo"
)

type AgentConfig struct {
	ID         int
	Depth      int
	Goroutines int
	Random     bool   // plays uniformly random legal moves instead of searching
	Seed       uint64 // random agents only
}

func (c AgentConfig) String() string {
	if c.Random {
		return fmt.Sprintf("agent%d(random seed=%d)", c.ID, c.Seed)
	}
	return fmt.Sprintf("agent%d(depth=%d goroutines=%d)", c.ID, c.Depth, c.Goroutines)
}

type GameMetric struct {
	StartingAgent int // AgentConfig.ID
	Winner        int // AgentConfig.ID
	FinalScore    int
	Turns         int
	StartTime     time.Time
	Duration      time.Duration
	Nodes         int64 // summed over every search in the game
	Cutoffs       int64
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

// AddSearches folds per-move search metrics into the game totals.
func (g *GameMetric) AddSearches(searches []searcher.SearchMetric) {
	g.Nodes += lo.SumBy(searches, func(s searcher.SearchMetric) int64 { return s.Nodes })
	g.Cutoffs += lo.SumBy(searches, func(s searcher.SearchMetric) int64 { return s.Cutoffs })
}

type Summary struct {
	Games     int
	Wins      map[int]int // by AgentConfig.ID
	MeanScore float64
	MeanTurns float64
	Nodes     int64
	Cutoffs   int64
	TotalTime time.Duration
}

func Summarize(records []GameRecord) Summary {
	s := Summary{
		Games: len(records),
		Wins:  lo.CountValuesBy(records, func(r GameRecord) int { return r.Winner }),
	}
	if len(records) == 0 {
		return s
	}
	s.MeanScore = float64(lo.SumBy(records, func(r GameRecord) int { return r.FinalScore })) / float64(len(records))
	s.MeanTurns = float64(lo.SumBy(records, func(r GameRecord) int { return r.Turns })) / float64(len(records))
	s.Nodes = lo.SumBy(records, func(r GameRecord) int64 { return r.Nodes })
	s.Cutoffs = lo.SumBy(records, func(r GameRecord) int64 { return r.Cutoffs })
	s.TotalTime = lo.SumBy(records, func(r GameRecord) time.Duration { return r.Duration })
	return s
}
