package sim

import (
	"container/heap"
	"testing"
)

// newTestSimulator assembles a simulator without starting the arrival
// or rail processes, so tests can schedule processes by hand.
func newTestSimulator(t *testing.T, cfg Configuration, horizonHours float64) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, horizonHours, NewSimulationKey(1))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s
}

// drainUntil executes scheduled events up to and including the limit,
// leaving later events queued.
func drainUntil(s *Simulator, limit float64) {
	for s.eventQueue.Len() > 0 {
		qe := heap.Pop(&s.eventQueue).(queuedEvent)
		if qe.ev.Timestamp() > limit {
			heap.Push(&s.eventQueue, qe)
			return
		}
		s.Clock = qe.ev.Timestamp()
		qe.ev.Execute(s)
	}
}
