package sim

import "math/rand"

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical Configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Source returns the seeded random source that drives every stochastic
// draw in a run (inter-arrival times, cargo types, cargo tonnages).
// The engine holds exactly one source per run; nothing else draws
// randomness, so the event sequence is fully determined by the key.
func (k SimulationKey) Source() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}
