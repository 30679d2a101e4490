package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPortYAML = `
ports:
  riga:
    oil_berths: 3
    dry_berths: 4
    cranes: 6
    grain_speed: 250
    oil_speed: 900
    general_speed: 18
    grain_storage_capacity: 80000
    general_storage_capacity: 15000
    oil_storage_capacity: 400000
    trains_per_day: 5
    train_capacity: 1800
    railway_capacity: 2
    ships_per_year: 600
    cargo_distribution:
      grain: 0.4
      oil: 0.3
      general: 0.3
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ports.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPortConfig_ReadsPreset(t *testing.T) {
	path := writeTestConfig(t, testPortYAML)

	cfg, err := LoadPortConfig(path, "riga")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.OilBerths)
	assert.Equal(t, 4, cfg.DryBerths)
	assert.Equal(t, 6, cfg.Cranes)
	assert.Equal(t, 250.0, cfg.GrainSpeed)
	assert.Equal(t, 900.0, cfg.OilSpeed)
	assert.Equal(t, 18.0, cfg.GeneralSpeed)
	assert.Equal(t, 80000.0, cfg.GrainStorageCapacity)
	assert.Equal(t, 15000.0, cfg.GeneralStorageCapacity)
	assert.Equal(t, 400000.0, cfg.OilStorageCapacity)
	assert.Equal(t, 5, cfg.TrainsPerDay)
	assert.Equal(t, 1800.0, cfg.TrainCapacity)
	assert.Equal(t, 2, cfg.RailwayCapacity)
	assert.Equal(t, 600, cfg.ShipsPerYear)
	assert.Equal(t, 0.4, cfg.CargoDistribution.Grain)
	assert.Equal(t, 0.3, cfg.CargoDistribution.Oil)
	assert.Equal(t, 0.3, cfg.CargoDistribution.General)

	// the loaded preset is runnable as-is
	assert.NoError(t, cfg.Validate())
}

func TestLoadPortConfig_MissingPreset(t *testing.T) {
	path := writeTestConfig(t, testPortYAML)

	_, err := LoadPortConfig(path, "rotterdam")
	assert.ErrorContains(t, err, "rotterdam")
}

func TestLoadPortConfig_MissingFile(t *testing.T) {
	_, err := LoadPortConfig(filepath.Join(t.TempDir(), "nope.yaml"), "riga")
	assert.Error(t, err)
}

func TestLoadPortConfig_MalformedYAML(t *testing.T) {
	path := writeTestConfig(t, "ports: [not a map")

	_, err := LoadPortConfig(path, "riga")
	assert.Error(t, err)
}
