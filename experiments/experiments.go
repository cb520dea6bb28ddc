// Package experiments plays agents against each other to compare search
// depths and parallelism.
package experiments

import (
	"fmt"
	"io"
	"time"

	"nim/agent"
	"nim/engine"
	"nim/experiments/metrics"
	"nim/game"
	"nim/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per match up

var baseline = metrics.AgentConfig{ID: 0, Depth: searcher.DefaultDepth, Goroutines: 1}

// DepthMatchUps pairs agents of increasing depth against the default-depth
// baseline.
func DepthMatchUps() [][2]metrics.AgentConfig {
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= 6; depth++ {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, {ID: depth, Depth: depth, Goroutines: 1}})
	}
	return matchUps
}

// ParallelMatchUps uses the same depth and goroutines on both sides so only
// the goroutine count varies between match ups. Each seat has its own ID.
func ParallelMatchUps(depth int) [][2]metrics.AgentConfig {
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 6} {
		matchUps = append(matchUps, [2]metrics.AgentConfig{
			{ID: 2*i + 1, Depth: depth, Goroutines: goroutines},
			{ID: 2*i + 2, Depth: depth, Goroutines: goroutines},
		})
	}
	return matchUps
}

// RandomMatchUp pits the baseline against a random mover.
func RandomMatchUp(seed uint64) [][2]metrics.AgentConfig {
	return [][2]metrics.AgentConfig{{baseline, {ID: -1, Random: true, Seed: seed}}}
}

// Run plays numGames games per match up from start, alternating which agent
// moves first, and logs a summary per match up.
func Run(name string, matchUps [][2]metrics.AgentConfig, numGames int, start game.State, variant game.Variant) ([]metrics.GameRecord, error) {
	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	gameRecords := []metrics.GameRecord{}
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %v and %v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		matchRecords := []metrics.GameRecord{}
		for i := 0; i < numGames; i++ {
			gameMetric, err := runGame(matchUp, i%2, start, variant)
			if err != nil {
				return gameRecords, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			matchRecords = append(matchRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp[0].ID,
				Agent2:     matchUp[1].ID,
				GameMetric: gameMetric,
			})
			log.Debug().Msgf("completed matchup %d game %d with winner: agent%d", mi+1, i+1, gameMetric.Winner)
		}

		summary := metrics.Summarize(matchRecords)
		log.Info().
			Int("games", summary.Games).
			Int("agent1-wins", summary.Wins[matchUp[0].ID]).
			Int("agent2-wins", summary.Wins[matchUp[1].ID]).
			Float64("mean-score", summary.MeanScore).
			Float64("mean-turns", summary.MeanTurns).
			Int64("nodes", summary.Nodes).
			Int64("cutoffs", summary.Cutoffs).
			Dur("duration", summary.TotalTime).
			Msgf("completed matchup %d of %d", mi+1, len(matchUps))
		gameRecords = append(gameRecords, matchRecords...)
	}

	log.Info().Msgf("completed %s experiment", name)
	return gameRecords, nil
}

// runGame executes a single game between two agents.
func runGame(matchUp [2]metrics.AgentConfig, first int, start game.State, variant game.Variant) (metrics.GameMetric, error) {
	rules := game.NewRules(variant)
	agents := [2]agent.Agent{createAgent(matchUp[0], rules), createAgent(matchUp[1], rules)}
	players := [2]engine.Player{
		{Name: "Player1", Agent: agents[0]},
		{Name: "Player2", Agent: agents[1]},
	}

	startTime := time.Now()
	outcome, err := engine.New(start, rules, players, first, io.Discard).Run()
	if err != nil {
		return metrics.GameMetric{}, err
	}

	winner := matchUp[0].ID
	if outcome.Winner == players[1].Name {
		winner = matchUp[1].ID
	}
	gameMetric := metrics.GameMetric{
		StartingAgent: matchUp[first].ID,
		Winner:        winner,
		FinalScore:    outcome.Score,
		Turns:         outcome.Turns,
		StartTime:     startTime,
		Duration:      time.Since(startTime),
	}
	for _, a := range agents {
		if sa, ok := a.(*agent.SearchAgent); ok {
			gameMetric.AddSearches(sa.Metrics())
		}
	}
	return gameMetric, nil
}

func createAgent(config metrics.AgentConfig, rules game.Rules) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(config.Seed)
	}
	minimax := searcher.NewMinimax(rules,
		searcher.WithDepth(config.Depth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	)
	return agent.NewSearchAgent(minimax, io.Discard)
}
