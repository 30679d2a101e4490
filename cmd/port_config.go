package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/harbor-sim/harbor-sim/sim"
)

// PortConfigFile is the on-disk configuration shape (YAML): a map of
// named port presets.
type PortConfigFile struct {
	Ports map[string]PortPreset `yaml:"ports"`
}

// PortPreset mirrors sim.Configuration field by field.
type PortPreset struct {
	OilBerths              int     `yaml:"oil_berths"`
	DryBerths              int     `yaml:"dry_berths"`
	Cranes                 int     `yaml:"cranes"`
	GrainSpeed             float64 `yaml:"grain_speed"`
	OilSpeed               float64 `yaml:"oil_speed"`
	GeneralSpeed           float64 `yaml:"general_speed"`
	GrainStorageCapacity   float64 `yaml:"grain_storage_capacity"`
	GeneralStorageCapacity float64 `yaml:"general_storage_capacity"`
	OilStorageCapacity     float64 `yaml:"oil_storage_capacity"`
	TrainsPerDay           int     `yaml:"trains_per_day"`
	TrainCapacity          float64 `yaml:"train_capacity"`
	RailwayCapacity        int     `yaml:"railway_capacity"`
	ShipsPerYear           int     `yaml:"ships_per_year"`
	CargoDistribution      struct {
		Grain   float64 `yaml:"grain"`
		Oil     float64 `yaml:"oil"`
		General float64 `yaml:"general"`
	} `yaml:"cargo_distribution"`
}

// LoadPortConfig reads a YAML preset file and returns the named preset
// as a run configuration. Validation is left to the core.
func LoadPortConfig(path, preset string) (sim.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Configuration{}, fmt.Errorf("read port config: %w", err)
	}

	var file PortConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return sim.Configuration{}, fmt.Errorf("parse port config %s: %w", path, err)
	}

	p, ok := file.Ports[preset]
	if !ok {
		return sim.Configuration{}, fmt.Errorf("port config %s has no preset %q", path, preset)
	}
	logrus.Infof("Using port preset %q from %s", preset, path)

	return sim.Configuration{
		OilBerths:              p.OilBerths,
		DryBerths:              p.DryBerths,
		Cranes:                 p.Cranes,
		GrainSpeed:             p.GrainSpeed,
		OilSpeed:               p.OilSpeed,
		GeneralSpeed:           p.GeneralSpeed,
		GrainStorageCapacity:   p.GrainStorageCapacity,
		GeneralStorageCapacity: p.GeneralStorageCapacity,
		OilStorageCapacity:     p.OilStorageCapacity,
		TrainsPerDay:           p.TrainsPerDay,
		TrainCapacity:          p.TrainCapacity,
		RailwayCapacity:        p.RailwayCapacity,
		ShipsPerYear:           p.ShipsPerYear,
		CargoDistribution: sim.CargoDistribution{
			Grain:   p.CargoDistribution.Grain,
			Oil:     p.CargoDistribution.Oil,
			General: p.CargoDistribution.General,
		},
	}, nil
}
