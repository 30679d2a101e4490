package sim

// Port holds the contended resources and bounded storage of one run.
// It is created fresh per run from the Configuration, owned by the
// Simulator, and mutated only through resource requests/releases and
// storage put/get; no state survives between runs.
type Port struct {
	OilBerths *Resource
	DryBerths *Resource
	Cranes    *Resource
	Railway   *Resource

	storage [len(cargoRoutes)]*Container
}

// NewPort builds the resource model for a validated configuration.
func NewPort(cfg Configuration) *Port {
	p := &Port{
		OilBerths: NewResource("oil-berths", cfg.OilBerths),
		DryBerths: NewResource("dry-berths", cfg.DryBerths),
		Cranes:    NewResource("cranes", cfg.Cranes),
		Railway:   NewResource("railway", cfg.RailwayCapacity),
	}
	for _, c := range CargoTypes {
		p.storage[c] = NewContainer(c.String(), cfg.StorageCapacity(c))
	}
	return p
}

// BerthPool returns the mooring pool the cargo class routes to.
func (p *Port) BerthPool(c CargoType) *Resource {
	if c.Route().Berth == OilBerth {
		return p.OilBerths
	}
	return p.DryBerths
}

// Storage returns the storage container for the cargo class.
func (p *Port) Storage(c CargoType) *Container {
	return p.storage[c]
}

// BerthsInUse returns the combined occupancy of both mooring pools.
func (p *Port) BerthsInUse() int {
	return p.OilBerths.InUse() + p.DryBerths.InUse()
}

// TotalStorageLevel returns the combined stock of all pools in tons.
func (p *Port) TotalStorageLevel() float64 {
	var total float64
	for _, c := range CargoTypes {
		total += p.storage[c].Level()
	}
	return total
}

// TotalStorageCapacity returns the combined capacity of all pools in tons.
func (p *Port) TotalStorageCapacity() float64 {
	var total float64
	for _, c := range CargoTypes {
		total += p.storage[c].Capacity()
	}
	return total
}
