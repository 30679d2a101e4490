// Package sim provides the core discrete-event simulation engine for the
// seaport capacity model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - ship.go: the per-ship state machine (Arrived → QueuedForBerth → ... → Departed)
//   - event.go: the Event and Process interfaces that drive the simulation
//   - simulator.go: the event loop, clock, and horizon handling
//
// # Architecture
//
// A run is a pure computation over simulated time. The Simulator owns a
// time-ordered event heap; ship, arrival, and rail processes are
// cooperatively scheduled state machines that advance only at explicit
// suspension points (resource grants, timers, storage headroom checks).
// All randomness flows from a single seeded source per run, so identical
// Configuration plus identical SimulationKey reproduces identical
// MetricsLog and CapacityReport.
//
// The analysis side is split from the engine: Analyze consumes a finished
// run's MetricsLog and produces an immutable CapacityReport. The scenario
// subpackage drives repeated runs (collapse-point ladder, stress battery)
// on top of these two entry points.
package sim
