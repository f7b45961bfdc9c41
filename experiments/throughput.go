// Package experiments measures the search engine outside of normal play.
package experiments

import (
	"fmt"
	"os"
	"strconv"

	"connect/engine"
	"connect/experiments/metrics"
	"connect/searcher"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// RunThroughput plays the engine against itself on the standard board at a
// range of search depths and reports how many nodes per second each depth
// sustains. Knobs come from the environment: THROUGHPUT_GAMES games per
// depth and depths 1..THROUGHPUT_MAX_PLIES.
func RunThroughput() {
	games := envInt("THROUGHPUT_GAMES", 3)
	maxPlies := envInt("THROUGHPUT_MAX_PLIES", 6)

	writer, err := metrics.NewWriter("throughput")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	log.Info().Int("games", games).Int("max_plies", maxPlies).Msg("starting throughput experiment...")

	records := []metrics.MoveRecord{}
	gameID := 0
	for plies := 1; plies <= maxPlies; plies++ {
		samples := []float64{}
		for i := 0; i < games; i++ {
			gameID++
			records = append(records, selfPlay(gameID, plies, &samples)...)
		}
		if len(samples) == 0 {
			continue
		}
		log.Info().
			Int("plies", plies).
			Int("searches", len(samples)).
			Float64("mean_nodes_per_sec", stat.Mean(samples, nil)).
			Float64("stddev_nodes_per_sec", stat.StdDev(samples, nil)).
			Msg("depth complete")
	}

	if err := writer.WriteMoveRecords(records); err != nil {
		panic(fmt.Sprintf("failed to store move records: %v", err))
	}
	log.Info().Str("dir", writer.Dir()).Msg("throughput experiment complete")
}

// selfPlay runs one computer-vs-computer game, returning a record per
// searched move and appending a nodes-per-second sample per search.
func selfPlay(gameID, plies int, samples *[]float64) []metrics.MoveRecord {
	collector := metrics.NewCollector()
	e := engine.New(searcher.WithMetrics(collector))
	e.NewGame(7, 6, 4)
	defer e.EndGame()

	records := []metrics.MoveRecord{}
	player := 0
	for step := 1; ; step++ {
		column, _, ok := e.AutoMove(player, plies)
		if !ok {
			break
		}

		// Opening-book moves skip the search and leave no metric.
		if metric := collector.Last(); metric.Nodes > 0 {
			records = append(records, metrics.MoveRecord{
				Game:         gameID,
				Step:         step,
				Player:       player,
				Column:       column,
				SearchMetric: metric,
			})
			if secs := metric.Duration.Seconds(); secs > 0 {
				*samples = append(*samples, float64(metric.Nodes)/secs)
			}
		}

		if e.IsWinner(player) || e.IsTie() {
			break
		}
		player ^= 1
	}
	return records
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msgf("invalid integer, using default %d", fallback)
		return fallback
	}
	return parsed
}
