package sim

import "github.com/sirupsen/logrus"

// ArrivalProcess generates the unbounded, non-restartable stream of
// ship arrivals. Inter-arrival times are exponentially distributed with
// mean 8760/ShipsPerYear hours (a Poisson process); cargo type follows
// the configured categorical distribution; tonnage is uniform within
// the class's fixed range. Generation never terminates within the
// horizon — events scheduled past it are simply discarded.
type ArrivalProcess struct {
	meanIATHours float64
	nextShipID   int
}

// NewArrivalProcess creates the generator for a validated configuration.
func NewArrivalProcess(cfg Configuration) *ArrivalProcess {
	return &ArrivalProcess{meanIATHours: HoursPerYear / float64(cfg.ShipsPerYear)}
}

// Resume emits one arrival: draws the ship, spawns its handling
// process at the current instant, and reschedules itself after an
// exponential gap.
func (a *ArrivalProcess) Resume(sim *Simulator, now float64) {
	cargo := a.drawCargoType(sim)
	tons := a.drawTons(sim, cargo)

	ship := &Ship{ID: a.nextShipID, Cargo: cargo, Tons: tons, ArrivalHour: now}
	a.nextShipID++
	logrus.Debugf("[%8.2fh] << arrival: ship %d (%s, %.0ft)", now, ship.ID, cargo, tons)

	NewShipProcess(ship).Resume(sim, now)

	iat := sim.Rand.ExpFloat64() * a.meanIATHours
	sim.Schedule(&resumeEvent{time: now + iat, proc: a})
}

// drawCargoType walks the configured distribution in the fixed
// CargoTypes order with a single uniform draw.
func (a *ArrivalProcess) drawCargoType(sim *Simulator) CargoType {
	u := sim.Rand.Float64()
	cumulative := 0.0
	for _, c := range CargoTypes {
		cumulative += sim.Config.CargoDistribution.Share(c)
		if u < cumulative {
			return c
		}
	}
	// u landed in the tolerance gap above the last share
	return CargoTypes[len(CargoTypes)-1]
}

// drawTons samples the class's uniform tonnage range, clamped to the
// class's storage capacity so a single ship can never exceed the pool
// it must eventually store into (the polling wait would otherwise
// never be satisfied).
func (a *ArrivalProcess) drawTons(sim *Simulator, cargo CargoType) float64 {
	r := cargo.Route()
	tons := r.MinTons + sim.Rand.Float64()*(r.MaxTons-r.MinTons)
	if cap := sim.Config.StorageCapacity(cargo); tons > cap {
		logrus.Warnf("ship cargo %.0ft exceeds %s storage capacity %.0ft; clamping", tons, cargo, cap)
		tons = cap
	}
	return tons
}
