package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbor-sim/harbor-sim/sim"
)

// saturatedConfig is a small port drowning in slow general cargo, so
// queue and wait predicates trip at the bottom of the ladder already.
func saturatedConfig() sim.Configuration {
	cfg := sim.DefaultConfig()
	cfg.DryBerths = 2
	cfg.Cranes = 2
	cfg.ShipsPerYear = 500
	cfg.CargoDistribution = sim.CargoDistribution{Grain: 0.02, Oil: 0.03, General: 0.95}
	return cfg
}

func TestFindCollapsePoint_FullLadderExecutes(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.ShipsPerYear = 100
	out := FindCollapsePoint(cfg, 720, sim.NewSimulationKey(42))

	// one point per rung, no early exit
	require.Len(t, out.Points, len(LoadLadder))
	for i, p := range out.Points {
		assert.Equal(t, LoadLadder[i], p.LoadMultiplier)
		assert.Equal(t, int(float64(100)*LoadLadder[i]), p.ShipsPerYear)
		assert.Equal(t, len(p.CriticalIssues), p.CriticalCount)
	}
}

func TestFindCollapsePoint_SaturatedPortCollapsesEarly(t *testing.T) {
	// GIVEN a port already past its dry-cargo capacity at baseline
	out := FindCollapsePoint(saturatedConfig(), 720, sim.NewSimulationKey(42))
	require.Len(t, out.Points, len(LoadLadder))

	// THEN queue and wait predicates hold from the first rung
	assert.Equal(t, 1.0, out.FirstIssuesLoad)
	assert.Equal(t, 1.0, out.ConstantDelaysLoad)
	first := out.Points[0]
	assert.Greater(t, first.MaxQueueLength, 5)
	assert.Greater(t, first.AvgWaitHours, 72.0)

	// storage never fills in 720h, so the third predicate stays off
	assert.Equal(t, 0.0, out.FullCollapseLoad)

	// degradation does not recover as load climbs
	for i := 1; i < len(out.Points); i++ {
		assert.GreaterOrEqual(t, out.Points[i].CriticalCount, out.Points[i-1].CriticalCount,
			"critical count dropped between %gx and %gx",
			out.Points[i-1].LoadMultiplier, out.Points[i].LoadMultiplier)
	}
}

func TestFindCollapsePoint_OverProvisionedPortNeverCollapses(t *testing.T) {
	// GIVEN a trickle of traffic against the reference equipment
	cfg := sim.DefaultConfig()
	cfg.ShipsPerYear = 30

	out := FindCollapsePoint(cfg, 720, sim.NewSimulationKey(42))
	require.Len(t, out.Points, len(LoadLadder))

	// THEN no threshold is ever reached, and zero marks that
	assert.Equal(t, 0.0, out.FirstIssuesLoad)
	assert.Equal(t, 0.0, out.ConstantDelaysLoad)
	assert.Equal(t, 0.0, out.FullCollapseLoad)
	for _, p := range out.Points {
		assert.Equal(t, 0, p.CriticalCount)
	}
}
