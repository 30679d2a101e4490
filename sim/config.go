package sim

import (
	"fmt"
	"math"
)

// HoursPerYear is the annualization base for throughput extrapolation.
const HoursPerYear = 8760.0

// distributionTolerance bounds the allowed deviation of the cargo
// distribution sum from 1.
const distributionTolerance = 1e-6

// CargoDistribution is the categorical probability of each cargo class
// for an arriving ship. The three shares must sum to 1 within tolerance.
type CargoDistribution struct {
	Grain   float64
	Oil     float64
	General float64
}

// Share returns the probability mass of the given cargo class.
func (d CargoDistribution) Share(c CargoType) float64 {
	switch c {
	case Grain:
		return d.Grain
	case Oil:
		return d.Oil
	default:
		return d.General
	}
}

// Sum returns the total probability mass.
func (d CargoDistribution) Sum() float64 {
	return d.Grain + d.Oil + d.General
}

// Configuration describes port capacity and load for one run. It is a
// plain value type: copy it to perturb a scenario, the engine never
// mutates it.
type Configuration struct {
	OilBerths int // oil mooring slots
	DryBerths int // dry-bulk mooring slots
	Cranes    int // shared unloading cranes for non-oil cargo

	GrainSpeed   float64 // unloading speed, tons/hour (conveyor)
	OilSpeed     float64 // unloading speed, tons/hour (pumps)
	GeneralSpeed float64 // unloading speed, tons/hour (cranes)

	GrainStorageCapacity   float64 // tons
	GeneralStorageCapacity float64 // tons
	OilStorageCapacity     float64 // tons

	TrainsPerDay    int     // rail departures per 24h
	TrainCapacity   float64 // tons per train
	RailwayCapacity int     // exclusive track slots

	ShipsPerYear      int // mean arrival rate of the Poisson process
	CargoDistribution CargoDistribution
}

// DefaultConfig returns the reference port configuration.
func DefaultConfig() Configuration {
	return Configuration{
		OilBerths:              5,
		DryBerths:              5,
		Cranes:                 7,
		GrainSpeed:             300,
		OilSpeed:               1000,
		GeneralSpeed:           20,
		GrainStorageCapacity:   100000,
		GeneralStorageCapacity: 20000,
		OilStorageCapacity:     540000,
		TrainsPerDay:           7,
		TrainCapacity:          2000,
		RailwayCapacity:        2,
		ShipsPerYear:           714,
		CargoDistribution:      CargoDistribution{Grain: 0.32, Oil: 0.35, General: 0.33},
	}
}

// Validate rejects configurations the engine cannot run: non-positive
// resource counts, capacities or speeds, and a cargo distribution that
// does not sum to 1 within tolerance. It is checked once before any
// simulation executes.
func (c Configuration) Validate() error {
	positiveInts := []struct {
		name string
		val  int
	}{
		{"oil berths", c.OilBerths},
		{"dry berths", c.DryBerths},
		{"cranes", c.Cranes},
		{"trains per day", c.TrainsPerDay},
		{"railway capacity", c.RailwayCapacity},
		{"ships per year", c.ShipsPerYear},
	}
	for _, p := range positiveInts {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", p.name, p.val)
		}
	}
	positiveFloats := []struct {
		name string
		val  float64
	}{
		{"grain speed", c.GrainSpeed},
		{"oil speed", c.OilSpeed},
		{"general speed", c.GeneralSpeed},
		{"grain storage capacity", c.GrainStorageCapacity},
		{"general storage capacity", c.GeneralStorageCapacity},
		{"oil storage capacity", c.OilStorageCapacity},
		{"train capacity", c.TrainCapacity},
	}
	for _, p := range positiveFloats {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %g", p.name, p.val)
		}
	}
	d := c.CargoDistribution
	if d.Grain < 0 || d.Oil < 0 || d.General < 0 {
		return fmt.Errorf("config: cargo shares must be non-negative, got %+v", d)
	}
	if math.Abs(d.Sum()-1) > distributionTolerance {
		return fmt.Errorf("config: cargo distribution sums to %g, want 1", d.Sum())
	}
	return nil
}

// UnloadingSpeed returns the configured speed for the cargo class in
// tons/hour.
func (c Configuration) UnloadingSpeed(cargo CargoType) float64 {
	switch cargo {
	case Grain:
		return c.GrainSpeed
	case Oil:
		return c.OilSpeed
	default:
		return c.GeneralSpeed
	}
}

// StorageCapacity returns the configured storage capacity for the cargo
// class in tons.
func (c Configuration) StorageCapacity(cargo CargoType) float64 {
	switch cargo {
	case Grain:
		return c.GrainStorageCapacity
	case Oil:
		return c.OilStorageCapacity
	default:
		return c.GeneralStorageCapacity
	}
}

// TotalBerths returns the combined size of both mooring pools.
func (c Configuration) TotalBerths() int {
	return c.OilBerths + c.DryBerths
}

// TotalStorageCapacity returns the combined capacity of all storage
// pools in tons.
func (c Configuration) TotalStorageCapacity() float64 {
	return c.GrainStorageCapacity + c.GeneralStorageCapacity + c.OilStorageCapacity
}
