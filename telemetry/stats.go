// Package telemetry provides herd statistics windows, bookmarks, and snapshots.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	Restart         int     `csv:"restart"` // resets since the run started
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// State at window end
	Score     int `csv:"score"`
	Animals   int `csv:"animals"`
	GroupSize int `csv:"group_size"`

	// Events during window
	Recruited int `csv:"recruited"`
	Delivered int `csv:"delivered"`

	// Hero movement during window
	HeroTravel float64 `csv:"hero_travel"`

	// Distance from each follower to the hero, sampled at window end
	FollowDistMean float64 `csv:"follow_dist_mean"`
	FollowDistStd  float64 `csv:"follow_dist_std"`
	FollowDistMax  float64 `csv:"follow_dist_max"`

	// Seconds from recruitment to delivery, over animals delivered this window
	HerdTimeMean float64 `csv:"herd_time_mean"`
	HerdTimeMax  float64 `csv:"herd_time_max"`
}

// ComputeDistanceStats returns mean, population standard deviation and max.
// All three are zero for an empty slice.
func ComputeDistanceStats(values []float64) (mean, std, maxVal float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	mean, std = stat.PopMeanStdDev(values, nil)
	return mean, std, floats.Max(values)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID),
		slog.Int("restart", s.Restart),
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("score", s.Score),
		slog.Int("animals", s.Animals),
		slog.Int("group_size", s.GroupSize),
		slog.Int("recruited", s.Recruited),
		slog.Int("delivered", s.Delivered),
		slog.Float64("hero_travel", s.HeroTravel),
		slog.Float64("follow_dist_mean", s.FollowDistMean),
		slog.Float64("follow_dist_std", s.FollowDistStd),
		slog.Float64("follow_dist_max", s.FollowDistMax),
		slog.Float64("herd_time_mean", s.HerdTimeMean),
		slog.Float64("herd_time_max", s.HerdTimeMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
