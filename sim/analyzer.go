package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Analyzer constants. The derating factor and turnover count are
// planning-rule assumptions inherited from the modeled port, not
// observed quantities.
const (
	fallbackProcessingHours = 24.0   // when no ships completed
	fallbackCargoPerShip    = 5000.0 // tons, when no ships completed
	craneDeratingFactor     = 0.7    // non-continuous crane operation
	storageTurnoversPerYear = 24.0
	criticalQueueLength     = 5
	criticalWaitHours       = 72.0
	criticalStoragePct      = 95.0
)

// SystemStatus classifies the observed load against the bottleneck
// capacity.
type SystemStatus string

const (
	StatusAmpleReserve SystemStatus = "ample-reserve" // utilization < 60%
	StatusModerateLoad SystemStatus = "moderate-load" // 60–80%
	StatusAtCapacity   SystemStatus = "at-capacity"   // > 80%
)

// InfraElement names the four capacity-bounded infrastructure elements.
type InfraElement string

const (
	ElementBerths  InfraElement = "berths"
	ElementCranes  InfraElement = "cranes"
	ElementStorage InfraElement = "storage"
	ElementRail    InfraElement = "rail"
)

// elementOrder fixes the bottleneck evaluation order; minimum ties
// resolve to the earliest element.
var elementOrder = [...]InfraElement{ElementBerths, ElementCranes, ElementStorage, ElementRail}

// ElementCapacity pairs an element with its theoretical annual
// capacity in tons, computed independently of observed load.
type ElementCapacity struct {
	Element    InfraElement
	AnnualTons float64
}

// CapacityReport is the immutable aggregate derived from one run.
// All fields are finite even for an empty metrics log.
type CapacityReport struct {
	AnnualCargoTons    float64
	ShipsProcessed     int
	AvgWaitHours       float64
	AvgProcessingHours float64

	BerthUtilizationPct   float64
	CraneUtilizationPct   float64
	StorageUtilizationPct float64

	AvgQueueLength float64
	MaxQueueLength int

	// ElementCapacities holds all four theoretical capacities in the
	// fixed evaluation order (berths, cranes, storage, rail).
	ElementCapacities          []ElementCapacity
	Bottleneck                 InfraElement
	TheoreticalMaxCapacityTons float64
	CapacityUtilizationPct     float64
	ReserveCapacityTons        float64

	CriticalIssues []string
	Status         SystemStatus
}

// Analyze turns a finished run's metrics log into a CapacityReport.
// It is a pure function of (metrics, config, horizon) and safe to call
// any number of times.
func Analyze(metrics *MetricsLog, cfg Configuration, horizonHours float64) CapacityReport {
	var r CapacityReport
	r.ShipsProcessed = metrics.ShipsProcessed()

	totalCargo := metrics.TotalCargoTons()
	if horizonHours > 0 {
		r.AnnualCargoTons = totalCargo * HoursPerYear / horizonHours
	}

	waits := make([]float64, 0, len(metrics.Completed()))
	processing := make([]float64, 0, len(metrics.Completed()))
	for _, rec := range metrics.Completed() {
		waits = append(waits, rec.WaitHours)
		processing = append(processing, rec.ProcessingHours)
	}
	r.AvgWaitHours = sampleMean(waits)
	r.AvgProcessingHours = sampleMean(processing)

	berthSamples := make([]float64, 0, len(metrics.UsageSamples()))
	craneSamples := make([]float64, 0, len(metrics.UsageSamples()))
	storageSamples := make([]float64, 0, len(metrics.UsageSamples()))
	for _, s := range metrics.UsageSamples() {
		berthSamples = append(berthSamples, float64(s.BerthsBusy))
		craneSamples = append(craneSamples, float64(s.CranesBusy))
		storageSamples = append(storageSamples, s.StoragePct)
	}
	if total := cfg.TotalBerths(); total > 0 {
		r.BerthUtilizationPct = sampleMean(berthSamples) / float64(total) * 100
	}
	if cfg.Cranes > 0 {
		r.CraneUtilizationPct = sampleMean(craneSamples) / float64(cfg.Cranes) * 100
	}
	r.StorageUtilizationPct = sampleMean(storageSamples)

	queueLens := make([]float64, 0, len(metrics.QueueSamples()))
	for _, s := range metrics.QueueSamples() {
		queueLens = append(queueLens, float64(s.Length))
		if s.Length > r.MaxQueueLength {
			r.MaxQueueLength = s.Length
		}
	}
	r.AvgQueueLength = sampleMean(queueLens)

	r.ElementCapacities = elementCapacities(cfg, r.AvgProcessingHours, totalCargo, r.ShipsProcessed)
	r.Bottleneck, r.TheoreticalMaxCapacityTons = bottleneck(r.ElementCapacities)

	if r.TheoreticalMaxCapacityTons > 0 {
		r.CapacityUtilizationPct = r.AnnualCargoTons / r.TheoreticalMaxCapacityTons * 100
	}
	r.ReserveCapacityTons = max(0, r.TheoreticalMaxCapacityTons-r.AnnualCargoTons)

	r.CriticalIssues = criticalIssues(r)
	r.Status = classify(r.CapacityUtilizationPct)
	return r
}

// elementCapacities computes the four theoretical annual capacities in
// the fixed evaluation order.
func elementCapacities(cfg Configuration, avgProcessingHours, totalCargo float64, ships int) []ElementCapacity {
	avgShipHours := avgProcessingHours
	if avgShipHours <= 0 {
		avgShipHours = fallbackProcessingHours
	}
	avgCargoPerShip := fallbackCargoPerShip
	if ships > 0 {
		avgCargoPerShip = totalCargo / float64(ships)
	}
	shipsPerYear := float64(cfg.TotalBerths()) * HoursPerYear / avgShipHours

	return []ElementCapacity{
		{ElementBerths, shipsPerYear * avgCargoPerShip},
		{ElementCranes, float64(cfg.Cranes) * cfg.GeneralSpeed * HoursPerYear * craneDeratingFactor},
		{ElementStorage, cfg.TotalStorageCapacity() * storageTurnoversPerYear},
		{ElementRail, float64(cfg.TrainsPerDay) * cfg.TrainCapacity * 365},
	}
}

// bottleneck returns the argmin element under the fixed order; the
// first minimum wins on ties.
func bottleneck(capacities []ElementCapacity) (InfraElement, float64) {
	best := capacities[0]
	for _, ec := range capacities[1:] {
		if ec.AnnualTons < best.AnnualTons {
			best = ec
		}
	}
	return best.Element, best.AnnualTons
}

// criticalIssues evaluates the three independent failure predicates.
func criticalIssues(r CapacityReport) []string {
	var issues []string
	if r.MaxQueueLength > criticalQueueLength {
		issues = append(issues, fmt.Sprintf("critical ship queue: %d (threshold %d)",
			r.MaxQueueLength, criticalQueueLength))
	}
	if r.AvgWaitHours > criticalWaitHours {
		issues = append(issues, fmt.Sprintf("critical ship idle time: %.1fh (threshold %.0fh)",
			r.AvgWaitHours, criticalWaitHours))
	}
	if r.StorageUtilizationPct > criticalStoragePct {
		issues = append(issues, fmt.Sprintf("critical storage occupancy: %.1f%% (threshold %.0f%%)",
			r.StorageUtilizationPct, criticalStoragePct))
	}
	return issues
}

func classify(utilizationPct float64) SystemStatus {
	switch {
	case utilizationPct > 80:
		return StatusAtCapacity
	case utilizationPct > 60:
		return StatusModerateLoad
	default:
		return StatusAmpleReserve
	}
}

// sampleMean is stat.Mean with a zero fallback for empty samples.
func sampleMean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// RankedElements returns the element capacities sorted ascending;
// equal capacities keep the fixed evaluation order.
func (r CapacityReport) RankedElements() []ElementCapacity {
	ranked := make([]ElementCapacity, len(r.ElementCapacities))
	copy(ranked, r.ElementCapacities)
	// insertion sort keeps it stable without importing sort for 4 items
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].AnnualTons < ranked[j-1].AnnualTons; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked
}

// RemovalEffect reports the system capacity if the named element's
// constraint were lifted: the minimum over the remaining elements, and
// the improvement over the current bottleneck capacity.
func (r CapacityReport) RemovalEffect(e InfraElement) (newCapacity, improvement float64) {
	first := true
	for _, ec := range r.ElementCapacities {
		if ec.Element == e {
			continue
		}
		if first || ec.AnnualTons < newCapacity {
			newCapacity = ec.AnnualTons
			first = false
		}
	}
	return newCapacity, newCapacity - r.TheoreticalMaxCapacityTons
}

// MeetsTarget reports whether the theoretical maximum covers an annual
// target in tons, and the deficit when it does not.
func (r CapacityReport) MeetsTarget(tons float64) (ok bool, deficit float64) {
	if r.TheoreticalMaxCapacityTons >= tons {
		return true, 0
	}
	return false, tons - r.TheoreticalMaxCapacityTons
}

// Print displays the report in the terminal.
func (r CapacityReport) Print() {
	fmt.Println("=== Capacity Report ===")
	fmt.Printf("Annual cargo         : %.2f Mt/year\n", r.AnnualCargoTons/1e6)
	fmt.Printf("Ships processed      : %d\n", r.ShipsProcessed)
	fmt.Printf("Avg wait             : %.1f h\n", r.AvgWaitHours)
	fmt.Printf("Avg processing       : %.1f h\n", r.AvgProcessingHours)
	fmt.Printf("Queue avg/max        : %.1f / %d ships\n", r.AvgQueueLength, r.MaxQueueLength)
	fmt.Printf("Berth utilization    : %.1f%%\n", r.BerthUtilizationPct)
	fmt.Printf("Crane utilization    : %.1f%%\n", r.CraneUtilizationPct)
	fmt.Printf("Storage utilization  : %.1f%%\n", r.StorageUtilizationPct)
	for _, ec := range r.ElementCapacities {
		marker := " "
		if ec.Element == r.Bottleneck {
			marker = "*"
		}
		fmt.Printf("%s %-8s capacity  : %.2f Mt/year\n", marker, ec.Element, ec.AnnualTons/1e6)
	}
	fmt.Printf("Bottleneck           : %s\n", r.Bottleneck)
	fmt.Printf("System utilization   : %.1f%% (%s)\n", r.CapacityUtilizationPct, r.Status)
	fmt.Printf("Reserve capacity     : %.2f Mt/year\n", r.ReserveCapacityTons/1e6)
	for _, issue := range r.CriticalIssues {
		fmt.Printf("!! %s\n", issue)
	}
}
