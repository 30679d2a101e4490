package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_RejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Configuration)
	}{
		{"zero oil berths", func(c *Configuration) { c.OilBerths = 0 }},
		{"negative dry berths", func(c *Configuration) { c.DryBerths = -1 }},
		{"zero cranes", func(c *Configuration) { c.Cranes = 0 }},
		{"zero grain speed", func(c *Configuration) { c.GrainSpeed = 0 }},
		{"negative oil speed", func(c *Configuration) { c.OilSpeed = -100 }},
		{"zero general speed", func(c *Configuration) { c.GeneralSpeed = 0 }},
		{"zero grain storage", func(c *Configuration) { c.GrainStorageCapacity = 0 }},
		{"zero general storage", func(c *Configuration) { c.GeneralStorageCapacity = 0 }},
		{"zero oil storage", func(c *Configuration) { c.OilStorageCapacity = 0 }},
		{"zero trains per day", func(c *Configuration) { c.TrainsPerDay = 0 }},
		{"zero train capacity", func(c *Configuration) { c.TrainCapacity = 0 }},
		{"zero railway capacity", func(c *Configuration) { c.RailwayCapacity = 0 }},
		{"zero ships per year", func(c *Configuration) { c.ShipsPerYear = 0 }},
		{"distribution under 1", func(c *Configuration) {
			c.CargoDistribution = CargoDistribution{Grain: 0.3, Oil: 0.3, General: 0.3}
		}},
		{"distribution over 1", func(c *Configuration) {
			c.CargoDistribution = CargoDistribution{Grain: 0.5, Oil: 0.5, General: 0.5}
		}},
		{"negative share", func(c *Configuration) {
			c.CargoDistribution = CargoDistribution{Grain: -0.1, Oil: 0.6, General: 0.5}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigValidate_DistributionTolerance(t *testing.T) {
	// GIVEN shares that sum to 1 within floating tolerance
	cfg := DefaultConfig()
	cfg.CargoDistribution = CargoDistribution{Grain: 0.1, Oil: 0.2, General: 0.7 + 1e-9}

	// THEN the configuration is accepted
	assert.NoError(t, cfg.Validate())
}

func TestConfigAccessors(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 300.0, cfg.UnloadingSpeed(Grain))
	assert.Equal(t, 1000.0, cfg.UnloadingSpeed(Oil))
	assert.Equal(t, 20.0, cfg.UnloadingSpeed(General))

	assert.Equal(t, 100000.0, cfg.StorageCapacity(Grain))
	assert.Equal(t, 540000.0, cfg.StorageCapacity(Oil))
	assert.Equal(t, 20000.0, cfg.StorageCapacity(General))

	assert.Equal(t, 10, cfg.TotalBerths())
	assert.Equal(t, 660000.0, cfg.TotalStorageCapacity())
}

func TestCargoDistribution_Share(t *testing.T) {
	d := CargoDistribution{Grain: 0.32, Oil: 0.35, General: 0.33}
	assert.Equal(t, 0.32, d.Share(Grain))
	assert.Equal(t, 0.35, d.Share(Oil))
	assert.Equal(t, 0.33, d.Share(General))
	assert.InDelta(t, 1.0, d.Sum(), 1e-12)
}
