package sim

import "fmt"

// QueueSample records the berth queue length seen by an arriving ship.
type QueueSample struct {
	Hour   float64
	Length int
}

// UsageSample is a resource-utilization snapshot taken on every 10th
// ship completion. The deliberate under-sampling is inherited from the
// modeled port and is a known bias source in the utilization averages.
type UsageSample struct {
	Hour       float64
	BerthsBusy int
	CranesBusy int
	StoragePct float64
}

// ShipRecord captures one completed ship.
type ShipRecord struct {
	WaitHours       float64 // queue-to-berth delay
	ProcessingHours float64 // arrival-to-departure
	CargoTons       float64
}

// MetricsLog is the append-only recorder of one run. Entries are never
// mutated or removed, ordering is time-monotonic, and the log is
// read-only once the run ends.
type MetricsLog struct {
	shipsProcessed int
	queueSamples   []QueueSample
	usageSamples   []UsageSample
	completed      []ShipRecord
}

// NewMetricsLog creates an empty log for a fresh run.
func NewMetricsLog() *MetricsLog {
	return &MetricsLog{}
}

// RecordQueueSample appends a berth-queue length observation.
func (m *MetricsLog) RecordQueueSample(hour float64, length int) {
	m.queueSamples = append(m.queueSamples, QueueSample{Hour: hour, Length: length})
}

// RecordShipProcessed appends a completed-ship record and bumps the
// completion counter.
func (m *MetricsLog) RecordShipProcessed(waitHours, processingHours, cargoTons float64) {
	m.shipsProcessed++
	m.completed = append(m.completed, ShipRecord{
		WaitHours:       waitHours,
		ProcessingHours: processingHours,
		CargoTons:       cargoTons,
	})
}

// RecordUsageSample appends a utilization snapshot. The storage
// percentage is derived here so all samples share the same guard
// against a zero capacity.
func (m *MetricsLog) RecordUsageSample(hour float64, berthsBusy, cranesBusy int, storageUsed, storageCapacity float64) {
	pct := 0.0
	if storageCapacity > 0 {
		pct = storageUsed / storageCapacity * 100
	}
	m.usageSamples = append(m.usageSamples, UsageSample{
		Hour:       hour,
		BerthsBusy: berthsBusy,
		CranesBusy: cranesBusy,
		StoragePct: pct,
	})
}

// ShipsProcessed returns the number of completed ships.
func (m *MetricsLog) ShipsProcessed() int { return m.shipsProcessed }

// QueueSamples returns the recorded queue observations. The returned
// slice is the log's internal storage; callers must treat it as
// read-only.
func (m *MetricsLog) QueueSamples() []QueueSample { return m.queueSamples }

// UsageSamples returns the recorded utilization snapshots, read-only.
func (m *MetricsLog) UsageSamples() []UsageSample { return m.usageSamples }

// Completed returns the completed-ship records, read-only.
func (m *MetricsLog) Completed() []ShipRecord { return m.completed }

// TotalCargoTons sums the cargo of all completed ships.
func (m *MetricsLog) TotalCargoTons() float64 {
	var total float64
	for _, r := range m.completed {
		total += r.CargoTons
	}
	return total
}

// Print displays raw run counters at the end of a simulation.
func (m *MetricsLog) Print(horizonHours float64) {
	fmt.Println("=== Run Metrics ===")
	fmt.Printf("Ships processed      : %d\n", m.shipsProcessed)
	fmt.Printf("Cargo processed      : %.0f tons\n", m.TotalCargoTons())
	fmt.Printf("Queue samples        : %d\n", len(m.queueSamples))
	fmt.Printf("Utilization samples  : %d\n", len(m.usageSamples))
	fmt.Printf("Horizon              : %.0f hours\n", horizonHours)
}
