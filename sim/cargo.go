package sim

import "fmt"

// CargoType is the closed enumeration of cargo classes the port handles.
type CargoType int

const (
	Grain CargoType = iota
	Oil
	General
)

// CargoTypes lists all cargo classes in declaration order. This is also
// the order in which the categorical arrival draw walks the configured
// distribution.
var CargoTypes = [...]CargoType{Grain, Oil, General}

var cargoNames = [...]string{"grain", "oil", "general"}

func (c CargoType) String() string {
	if c < 0 || int(c) >= len(cargoNames) {
		return fmt.Sprintf("cargo(%d)", int(c))
	}
	return cargoNames[c]
}

// BerthKind distinguishes the two mooring pools.
type BerthKind int

const (
	DryBerth BerthKind = iota
	OilBerth
)

// Route fixes how one cargo class moves through the port: which berth
// pool it moors at, whether unloading requires a crane, and the uniform
// tonnage range a ship of this class carries. Oil bypasses cranes
// entirely (direct pumping); grain and general cargo unload over the
// shared crane pool into their own storage.
type Route struct {
	Berth      BerthKind
	NeedsCrane bool
	MinTons    float64
	MaxTons    float64
}

// cargoRoutes is the single dispatch table for cargo-type branching.
// Storage pools and unloading speeds are per-class as well but live in
// Configuration, since they are tunable; the routing itself is not.
var cargoRoutes = [...]Route{
	Grain:   {Berth: DryBerth, NeedsCrane: true, MinTons: 3000, MaxTons: 8000},
	Oil:     {Berth: OilBerth, NeedsCrane: false, MinTons: 5000, MaxTons: 15000},
	General: {Berth: DryBerth, NeedsCrane: true, MinTons: 1000, MaxTons: 5000},
}

// Route returns the fixed routing entry for the cargo class.
func (c CargoType) Route() Route {
	return cargoRoutes[c]
}
