package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// railLoadHours is the fixed load/turnaround delay before a track slot
// frees again.
const railLoadHours = 2.0

// railPriority fixes the withdrawal order: grain > general > oil.
var railPriority = [...]CargoType{Grain, General, Oil}

// RailState enumerates the dispatcher's stages.
type RailState int

const (
	RailIdle RailState = iota
	RailQueuedForTrack
	RailLoading
)

// RailDispatchProcess drains storage through trains on a fixed period
// of 24/TrainsPerDay hours, measured from track release. Each firing
// acquires one exclusive track slot (FIFO), withdraws up to a train's
// capacity by the fixed priority policy, and holds the slot for the
// load/turnaround delay.
type RailDispatchProcess struct {
	state       RailState
	periodHours float64
}

// NewRailDispatchProcess creates the dispatcher for a validated
// configuration. Start it by scheduling its first firing one period in.
func NewRailDispatchProcess(cfg Configuration) *RailDispatchProcess {
	return &RailDispatchProcess{state: RailIdle, periodHours: 24 / float64(cfg.TrainsPerDay)}
}

// Period returns the firing interval in hours.
func (p *RailDispatchProcess) Period() float64 { return p.periodHours }

// Resume advances the dispatcher state machine.
func (p *RailDispatchProcess) Resume(sim *Simulator, now float64) {
	switch p.state {
	case RailIdle:
		// period timer fired: contend for a track slot
		p.state = RailQueuedForTrack
		if sim.Port.Railway.Request(sim, now, p) {
			p.loadTrain(sim, now)
		}
	case RailQueuedForTrack:
		// track slot granted
		p.loadTrain(sim, now)
	case RailLoading:
		// load/turnaround done: free the slot, arm the next firing
		sim.Port.Railway.Release(sim, now)
		p.state = RailIdle
		sim.Schedule(&resumeEvent{time: now + p.periodHours, proc: p})
	default:
		panic(fmt.Sprintf("rail dispatcher resumed in unknown state %d", p.state))
	}
}

// loadTrain withdraws up to a train's capacity. A single pool holding a
// full train wins by priority; otherwise available stock is drained
// across pools in priority order until the train is full or all pools
// are empty.
func (p *RailDispatchProcess) loadTrain(sim *Simulator, now float64) {
	want := sim.Config.TrainCapacity
	loaded := 0.0

	for _, c := range railPriority {
		store := sim.Port.Storage(c)
		if store.Level() >= want-levelEpsilon {
			p.withdraw(store, want)
			loaded = want
			break
		}
	}
	if loaded == 0 {
		for _, c := range railPriority {
			store := sim.Port.Storage(c)
			take := min(want-loaded, store.Level())
			if take > 0 {
				p.withdraw(store, take)
				loaded += take
			}
			if loaded >= want-levelEpsilon {
				break
			}
		}
	}

	logrus.Debugf("[%8.2fh] train loaded %.0ft", now, loaded)
	p.state = RailLoading
	sim.Schedule(&resumeEvent{time: now + railLoadHours, proc: p})
}

func (p *RailDispatchProcess) withdraw(store *Container, amount float64) {
	if err := store.Get(amount); err != nil {
		panic(fmt.Sprintf("rail dispatch: %v", err))
	}
}
