package sim

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in simulated hours) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// Process is a cooperatively scheduled logical task. Processes suspend
// by returning from Resume after arranging to be woken again: either by
// a resource grant (FIFO, on release) or by a timer they schedule
// themselves. They are resumable state machines, not goroutines; the
// engine never runs two of them at once.
type Process interface {
	Resume(sim *Simulator, now float64)
}

// resumeEvent wakes a suspended process at a scheduled instant. It is
// the only event type in the engine: timers, resource grants and
// arrival self-rescheduling all reduce to it.
type resumeEvent struct {
	time float64
	proc Process
}

func (e *resumeEvent) Timestamp() float64 { return e.time }

func (e *resumeEvent) Execute(sim *Simulator) {
	e.proc.Resume(sim, e.time)
}
