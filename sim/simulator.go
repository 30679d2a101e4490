// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// queuedEvent pairs an event with its insertion sequence number. Events
// scheduled for the same instant execute in schedule order, which is
// exactly FIFO arrival order into each resource's wait queue; together
// with the single seeded random source this makes runs reproducible
// bit-for-bit.
type queuedEvent struct {
	ev  Event
	seq int64
}

// EventQueue implements heap.Interface and orders events by timestamp,
// then by insertion sequence.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []queuedEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].ev.Timestamp() != eq[j].ev.Timestamp() {
		return eq[i].ev.Timestamp() < eq[j].ev.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(queuedEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, the port
// state, and the event loop. Every run starts from a freshly
// constructed Port and MetricsLog.
type Simulator struct {
	Clock   float64 // simulated hours
	Horizon float64
	Config  Configuration
	Port    *Port
	Metrics *MetricsLog
	// Rand is the single seeded source behind all stochastic draws.
	Rand *rand.Rand

	eventQueue EventQueue
	seq        int64
	started    bool
}

// NewSimulator validates the configuration and assembles a run.
func NewSimulator(cfg Configuration, horizonHours float64, key SimulationKey) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if horizonHours <= 0 {
		return nil, fmt.Errorf("config: horizon must be positive, got %g hours", horizonHours)
	}
	return &Simulator{
		Horizon:    horizonHours,
		Config:     cfg,
		Port:       NewPort(cfg),
		Metrics:    NewMetricsLog(),
		Rand:       key.Source(),
		eventQueue: make(EventQueue, 0),
	}, nil
}

// Schedule pushes an event into the simulator's event queue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.eventQueue, queuedEvent{ev: ev, seq: sim.seq})
	sim.seq++
}

// Run drives the event loop until the horizon. The arrival generator
// starts at time zero; the rail dispatcher first fires one period in.
// Events scheduled past the horizon are discarded, which is how
// unfinished processes end. Run executes at most once per Simulator.
func (sim *Simulator) Run() {
	if sim.started {
		return
	}
	sim.started = true

	sim.Schedule(&resumeEvent{time: 0, proc: NewArrivalProcess(sim.Config)})
	rail := NewRailDispatchProcess(sim.Config)
	sim.Schedule(&resumeEvent{time: rail.Period(), proc: rail})

	for sim.eventQueue.Len() > 0 {
		qe := heap.Pop(&sim.eventQueue).(queuedEvent)
		if qe.ev.Timestamp() > sim.Horizon {
			break
		}
		sim.Clock = qe.ev.Timestamp()
		qe.ev.Execute(sim)
	}
	sim.Clock = sim.Horizon
	logrus.Infof("[%8.2fh] simulation ended: %d ships processed", sim.Clock, sim.Metrics.ShipsProcessed())
}

// Run executes one full simulation and returns its append-only metrics
// log and the port end-state.
func Run(cfg Configuration, horizonHours float64, key SimulationKey) (*MetricsLog, *Port, error) {
	s, err := NewSimulator(cfg, horizonHours, key)
	if err != nil {
		return nil, nil, err
	}
	s.Run()
	return s.Metrics, s.Port, nil
}
