package telemetry

// LifetimeStats tracks one animal from spawn to delivery.
type LifetimeStats struct {
	SpawnTick   int32
	RecruitTick int32 // -1 until recruited
	DeliverTick int32 // -1 until delivered
}

// Recruited reports whether the animal has joined the group.
func (ls *LifetimeStats) Recruited() bool {
	return ls.RecruitTick >= 0
}

// HerdTicks returns how long the animal followed before delivery, or -1.
func (ls *LifetimeStats) HerdTicks() int32 {
	if ls.RecruitTick < 0 || ls.DeliverTick < 0 {
		return -1
	}
	return ls.DeliverTick - ls.RecruitTick
}

// LifetimeTracker manages per-animal lifetime statistics, keyed by entity ID.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register starts tracking an animal spawned at tick.
func (lt *LifetimeTracker) Register(entityID uint32, tick int32) {
	lt.stats[entityID] = &LifetimeStats{
		SpawnTick:   tick,
		RecruitTick: -1,
		DeliverTick: -1,
	}
}

// Get returns the lifetime stats for an animal, or nil if not found.
func (lt *LifetimeTracker) Get(entityID uint32) *LifetimeStats {
	return lt.stats[entityID]
}

// RecordRecruit marks the tick an animal joined the group.
func (lt *LifetimeTracker) RecordRecruit(entityID uint32, tick int32) {
	if s := lt.stats[entityID]; s != nil && s.RecruitTick < 0 {
		s.RecruitTick = tick
	}
}

// RecordDelivery marks the delivery tick, stops tracking the animal and
// returns its final stats. Entity IDs are recycled, so delivered animals
// must not stay in the map.
func (lt *LifetimeTracker) RecordDelivery(entityID uint32, tick int32) *LifetimeStats {
	s := lt.stats[entityID]
	if s == nil {
		return nil
	}
	s.DeliverTick = tick
	delete(lt.stats, entityID)
	return s
}

// Count returns the number of tracked animals.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}

// Clear drops every tracked animal.
func (lt *LifetimeTracker) Clear() {
	clear(lt.stats)
}
