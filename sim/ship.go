package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// storageRetryHours is the fixed re-check period while a ship waits for
// storage headroom. This is a polling approximation of a wake-on-free
// waiter, kept deliberately: under heavy contention it is not
// equivalent to an exact conditional wake-up.
const storageRetryHours = 1.0

// utilizationSampleEvery triggers a resource snapshot on every Nth ship
// completion.
const utilizationSampleEvery = 10

// Ship is a transient entity: created by the arrival process, consumed
// by its handling process, discarded on departure.
type Ship struct {
	ID          int
	Cargo       CargoType
	Tons        float64
	ArrivalHour float64
}

// ShipState enumerates the handling stages of a ship.
type ShipState int

const (
	ShipArrived ShipState = iota
	ShipQueuedForBerth
	ShipBerthed
	ShipQueuedForCrane
	ShipUnloading
	ShipAwaitingStorage
	ShipStored
	ShipDeparted
)

var shipStateNames = [...]string{
	"arrived", "queued-for-berth", "berthed", "queued-for-crane",
	"unloading", "awaiting-storage", "stored", "departed",
}

func (s ShipState) String() string {
	if s < 0 || int(s) >= len(shipStateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return shipStateNames[s]
}

// ShipProcess is the per-ship state machine. The berth, once granted,
// is held for the entire dwell and released only on departure; the
// crane is held only during active unloading.
type ShipProcess struct {
	ship      *Ship
	state     ShipState
	berthWait float64
}

// NewShipProcess creates the handling process for a freshly arrived
// ship. Start it by calling Resume at the ship's arrival instant.
func NewShipProcess(ship *Ship) *ShipProcess {
	return &ShipProcess{ship: ship, state: ShipArrived}
}

// State returns the current handling stage.
func (p *ShipProcess) State() ShipState { return p.state }

// Resume advances the state machine. It is invoked at the arrival
// instant, on every resource grant, and on every timer expiry.
func (p *ShipProcess) Resume(sim *Simulator, now float64) {
	switch p.state {
	case ShipArrived:
		pool := sim.Port.BerthPool(p.ship.Cargo)
		sim.Metrics.RecordQueueSample(now, pool.QueueLen())
		p.state = ShipQueuedForBerth
		if pool.Request(sim, now, p) {
			p.berthed(sim, now)
		}
	case ShipQueuedForBerth:
		// berth granted
		p.berthed(sim, now)
	case ShipQueuedForCrane:
		// crane granted
		p.startUnloading(sim, now)
	case ShipUnloading:
		// unloading timer expired
		if p.ship.Cargo.Route().NeedsCrane {
			sim.Port.Cranes.Release(sim, now)
		}
		p.state = ShipAwaitingStorage
		p.tryStore(sim, now)
	case ShipAwaitingStorage:
		// storage retry timer expired
		p.tryStore(sim, now)
	default:
		panic(fmt.Sprintf("ship %d resumed in terminal state %s", p.ship.ID, p.state))
	}
}

func (p *ShipProcess) berthed(sim *Simulator, now float64) {
	p.state = ShipBerthed
	p.berthWait = now - p.ship.ArrivalHour
	logrus.Debugf("[%8.2fh] ship %d (%s, %.0ft) berthed after %.2fh wait",
		now, p.ship.ID, p.ship.Cargo, p.ship.Tons, p.berthWait)
	if p.ship.Cargo.Route().NeedsCrane {
		p.state = ShipQueuedForCrane
		if sim.Port.Cranes.Request(sim, now, p) {
			p.startUnloading(sim, now)
		}
		return
	}
	p.startUnloading(sim, now)
}

func (p *ShipProcess) startUnloading(sim *Simulator, now float64) {
	p.state = ShipUnloading
	duration := p.ship.Tons / sim.Config.UnloadingSpeed(p.ship.Cargo)
	sim.Schedule(&resumeEvent{time: now + duration, proc: p})
}

// tryStore checks storage headroom and either deposits the cargo and
// departs, or re-arms the fixed retry timer. The deposit happens at the
// same instant as a successful check and the engine never preempts
// mid-operation, so the put cannot overflow.
func (p *ShipProcess) tryStore(sim *Simulator, now float64) {
	store := sim.Port.Storage(p.ship.Cargo)
	if store.Level()+p.ship.Tons > store.Capacity()+levelEpsilon {
		sim.Schedule(&resumeEvent{time: now + storageRetryHours, proc: p})
		return
	}
	if err := store.Put(p.ship.Tons); err != nil {
		panic(fmt.Sprintf("ship %d: %v", p.ship.ID, err))
	}
	p.state = ShipStored
	p.depart(sim, now)
}

func (p *ShipProcess) depart(sim *Simulator, now float64) {
	sim.Port.BerthPool(p.ship.Cargo).Release(sim, now)
	p.state = ShipDeparted
	sim.Metrics.RecordShipProcessed(p.berthWait, now-p.ship.ArrivalHour, p.ship.Tons)
	logrus.Debugf("[%8.2fh] ship %d departed after %.2fh", now, p.ship.ID, now-p.ship.ArrivalHour)

	if sim.Metrics.ShipsProcessed()%utilizationSampleEvery == 0 {
		sim.Metrics.RecordUsageSample(now,
			sim.Port.BerthsInUse(),
			sim.Port.Cranes.InUse(),
			sim.Port.TotalStorageLevel(),
			sim.Port.TotalStorageCapacity())
	}
}
