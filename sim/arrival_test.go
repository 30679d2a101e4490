package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrival_DegenerateDistributionSpawnsOneClass(t *testing.T) {
	// GIVEN a distribution concentrated entirely on grain
	cfg := DefaultConfig()
	cfg.CargoDistribution = CargoDistribution{Grain: 1, Oil: 0, General: 0}
	s := newTestSimulator(t, cfg, 1000)
	s.Schedule(&resumeEvent{time: 0, proc: NewArrivalProcess(cfg)})

	// WHEN arrivals run for a while
	drainUntil(s, 200)

	// THEN only grain storage ever receives cargo
	assert.Greater(t, s.Port.Storage(Grain).TotalDeposited(), 0.0)
	assert.Equal(t, 0.0, s.Port.Storage(Oil).TotalDeposited())
	assert.Equal(t, 0.0, s.Port.Storage(General).TotalDeposited())
}

func TestArrival_CargoDrawMatchesDistribution(t *testing.T) {
	// GIVEN the reference distribution and many draws
	s := newTestSimulator(t, DefaultConfig(), 1000)
	a := NewArrivalProcess(s.Config)

	const draws = 100000
	counts := map[CargoType]int{}
	for i := 0; i < draws; i++ {
		counts[a.drawCargoType(s)]++
	}

	// THEN empirical shares track the configured ones
	for _, c := range CargoTypes {
		got := float64(counts[c]) / draws
		assert.InDelta(t, s.Config.CargoDistribution.Share(c), got, 0.02, "share of %s", c)
	}
}

func TestArrival_TonnageWithinClassRange(t *testing.T) {
	s := newTestSimulator(t, DefaultConfig(), 1000)
	a := NewArrivalProcess(s.Config)

	for i := 0; i < 1000; i++ {
		for _, c := range CargoTypes {
			r := c.Route()
			tons := a.drawTons(s, c)
			require.GreaterOrEqual(t, tons, r.MinTons)
			require.LessOrEqual(t, tons, r.MaxTons)
		}
	}
}

func TestArrival_TonnageClampedToStorageCapacity(t *testing.T) {
	// GIVEN general storage smaller than the smallest general ship
	cfg := DefaultConfig()
	cfg.GeneralStorageCapacity = 800
	s := newTestSimulator(t, cfg, 1000)
	a := NewArrivalProcess(cfg)

	// THEN every draw is clamped so the ship can eventually store
	for i := 0; i < 100; i++ {
		assert.Equal(t, 800.0, a.drawTons(s, General))
	}
}

func TestArrival_MeanInterArrivalTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShipsPerYear = 876 // mean gap of exactly 10h
	a := NewArrivalProcess(cfg)
	assert.InDelta(t, 10.0, a.meanIATHours, 1e-9)
}
