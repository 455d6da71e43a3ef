package telemetry

// HerdSample is the world state the game hands to Flush at window end.
type HerdSample struct {
	Restart         int
	Score           int
	Animals         int
	GroupSize       int
	FollowDistances []float64
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	runID       string
	windowTicks int32
	dt          float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	recruited  int
	delivered  int
	heroTravel float64
	herdTimes  []float64
}

// NewCollector creates a new stats collector.
// windowTicks: ticks per stats window
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(runID string, windowTicks int32, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		runID:       runID,
		windowTicks: windowTicks,
		dt:          dt,
	}
}

// RecordRecruit records an animal joining the group.
func (c *Collector) RecordRecruit() {
	c.recruited++
}

// RecordDelivery records an animal delivered to the yard.
func (c *Collector) RecordDelivery() {
	c.delivered++
}

// RecordHerdTime records how long a delivered animal followed the hero.
func (c *Collector) RecordHerdTime(ticks int32) {
	c.herdTimes = append(c.herdTimes, float64(ticks)*c.dt)
}

// RecordHeroTravel adds the distance the hero covered this tick.
func (c *Collector) RecordHeroTravel(d float64) {
	c.heroTravel += d
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, sample HerdSample) WindowStats {
	mean, std, maxDist := ComputeDistanceStats(sample.FollowDistances)
	herdMean, _, herdMax := ComputeDistanceStats(c.herdTimes)

	stats := WindowStats{
		RunID:           c.runID,
		Restart:         sample.Restart,
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Score:     sample.Score,
		Animals:   sample.Animals,
		GroupSize: sample.GroupSize,

		Recruited:  c.recruited,
		Delivered:  c.delivered,
		HeroTravel: c.heroTravel,

		FollowDistMean: mean,
		FollowDistStd:  std,
		FollowDistMax:  maxDist,

		HerdTimeMean: herdMean,
		HerdTimeMax:  herdMax,
	}

	c.Reset(currentTick)

	return stats
}

// Reset clears counters and starts a new window at tick.
func (c *Collector) Reset(tick int32) {
	c.windowStartTick = tick
	c.recruited = 0
	c.delivered = 0
	c.heroTravel = 0
	c.herdTimes = c.herdTimes[:0]
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
