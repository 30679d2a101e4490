package scenario

import (
	"github.com/sirupsen/logrus"

	"github.com/harbor-sim/harbor-sim/sim"
)

// ScenarioResult pairs a perturbed configuration with its report.
// Err is set when the run itself failed; the battery continues past it.
type ScenarioResult struct {
	Name   string
	Config sim.Configuration
	Report sim.CapacityReport
	Err    error
}

// stressScenario is a named configuration perturbation. Equipment-loss
// perturbations clamp counts to a minimum of 1 rather than producing a
// configuration the engine would reject.
type stressScenario struct {
	name  string
	apply func(sim.Configuration) sim.Configuration
}

var stressBattery = []stressScenario{
	{"+10% load", func(c sim.Configuration) sim.Configuration {
		c.ShipsPerYear = scaleShips(c.ShipsPerYear, 1.1)
		return c
	}},
	{"grain+oil surge, +30% load", func(c sim.Configuration) sim.Configuration {
		c.CargoDistribution = sim.CargoDistribution{Grain: 0.5, Oil: 0.45, General: 0.05}
		c.ShipsPerYear = scaleShips(c.ShipsPerYear, 1.3)
		return c
	}},
	{"loss of two cranes", func(c sim.Configuration) sim.Configuration {
		c.Cranes = clampMin(c.Cranes-2, 1)
		return c
	}},
	{"50% equipment availability", func(c sim.Configuration) sim.Configuration {
		c.Cranes = clampMin(c.Cranes/2, 1)
		c.OilBerths = clampMin(c.OilBerths/2, 1)
		c.DryBerths = clampMin(c.DryBerths/2, 1)
		return c
	}},
	{"-30% unloading speed (weather)", func(c sim.Configuration) sim.Configuration {
		c.GrainSpeed *= 0.7
		c.OilSpeed *= 0.7
		c.GeneralSpeed *= 0.7
		return c
	}},
	{"+50% arrival surge", func(c sim.Configuration) sim.Configuration {
		c.ShipsPerYear = scaleShips(c.ShipsPerYear, 1.5)
		return c
	}},
}

// RunStressBattery executes the six structural stress scenarios as
// independent full runs and returns their results in battery order.
// A failing scenario is recorded with its error and does not abort the
// rest.
func RunStressBattery(cfg sim.Configuration, horizonHours float64, key sim.SimulationKey) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(stressBattery))
	for _, s := range stressBattery {
		test := s.apply(cfg)
		result := ScenarioResult{Name: s.name, Config: test}

		metrics, _, err := sim.Run(test, horizonHours, key)
		if err != nil {
			logrus.Errorf("stress scenario %q: %v; continuing battery", s.name, err)
			result.Err = err
			results = append(results, result)
			continue
		}
		result.Report = sim.Analyze(metrics, test, horizonHours)
		results = append(results, result)
	}
	return results
}

func scaleShips(ships int, factor float64) int {
	return int(float64(ships) * factor)
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
