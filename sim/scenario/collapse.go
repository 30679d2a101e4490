// Package scenario drives repeated full simulation runs on top of the
// engine's Run/Analyze entry points: a load ladder that searches for
// the collapse point, and a battery of structural stress scenarios.
// Every point is an independent fixed-seed run; a degenerate point is
// logged and isolated, never aborting the sweep.
package scenario

import (
	"github.com/sirupsen/logrus"

	"github.com/harbor-sim/harbor-sim/sim"
)

// LoadLadder is the fixed sequence of multipliers applied to the
// configured arrival rate. The full ladder always executes; there is
// no early termination once collapse is found.
var LoadLadder = []float64{1.0, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.7, 1.8, 1.9, 2.0, 2.5, 3.0}

// CollapsePoint is the outcome of one ladder run.
type CollapsePoint struct {
	LoadMultiplier        float64
	ShipsPerYear          int
	AnnualCargoTons       float64
	AvgQueueLength        float64
	MaxQueueLength        int
	AvgWaitHours          float64
	StorageUtilizationPct float64
	CriticalCount         int
	CriticalIssues        []string
}

// CollapseAnalysis aggregates the ladder. The threshold fields hold the
// first multiplier at which the count of satisfied critical predicates
// reached 1, 2 and 3 respectively; zero means the threshold was never
// reached within the ladder.
type CollapseAnalysis struct {
	Points             []CollapsePoint
	FirstIssuesLoad    float64
	ConstantDelaysLoad float64
	FullCollapseLoad   float64
}

// FindCollapsePoint runs the engine across the load ladder, scaling
// ShipsPerYear, and records where the three critical-issue predicates
// begin to hold. Each point is a full independent run with the same
// SimulationKey.
func FindCollapsePoint(cfg sim.Configuration, horizonHours float64, key sim.SimulationKey) CollapseAnalysis {
	var out CollapseAnalysis
	baseShips := cfg.ShipsPerYear

	for _, multiplier := range LoadLadder {
		test := cfg
		test.ShipsPerYear = int(float64(baseShips) * multiplier)

		metrics, _, err := sim.Run(test, horizonHours, key)
		if err != nil {
			logrus.Errorf("collapse ladder %.1fx: %v; skipping point", multiplier, err)
			continue
		}
		report := sim.Analyze(metrics, test, horizonHours)
		count := len(report.CriticalIssues)

		if out.FirstIssuesLoad == 0 && count >= 1 {
			out.FirstIssuesLoad = multiplier
		}
		if out.ConstantDelaysLoad == 0 && count >= 2 {
			out.ConstantDelaysLoad = multiplier
		}
		if out.FullCollapseLoad == 0 && count >= 3 {
			out.FullCollapseLoad = multiplier
		}

		out.Points = append(out.Points, CollapsePoint{
			LoadMultiplier:        multiplier,
			ShipsPerYear:          test.ShipsPerYear,
			AnnualCargoTons:       report.AnnualCargoTons,
			AvgQueueLength:        report.AvgQueueLength,
			MaxQueueLength:        report.MaxQueueLength,
			AvgWaitHours:          report.AvgWaitHours,
			StorageUtilizationPct: report.StorageUtilizationPct,
			CriticalCount:         count,
			CriticalIssues:        report.CriticalIssues,
		})
	}
	return out
}
