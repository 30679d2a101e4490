package sim

import "testing"

func TestCargoRoute_OilBypassesCranes(t *testing.T) {
	r := Oil.Route()
	if r.Berth != OilBerth {
		t.Errorf("oil berth kind: got %v, want OilBerth", r.Berth)
	}
	if r.NeedsCrane {
		t.Error("oil must bypass cranes (direct pumping)")
	}
}

func TestCargoRoute_DryCargoUsesCranes(t *testing.T) {
	for _, c := range []CargoType{Grain, General} {
		r := c.Route()
		if r.Berth != DryBerth {
			t.Errorf("%s berth kind: got %v, want DryBerth", c, r.Berth)
		}
		if !r.NeedsCrane {
			t.Errorf("%s must require a crane", c)
		}
	}
}

func TestCargoRoute_TonnageRanges(t *testing.T) {
	cases := []struct {
		cargo    CargoType
		min, max float64
	}{
		{Grain, 3000, 8000},
		{Oil, 5000, 15000},
		{General, 1000, 5000},
	}
	for _, tc := range cases {
		r := tc.cargo.Route()
		if r.MinTons != tc.min || r.MaxTons != tc.max {
			t.Errorf("%s tonnage range: got [%g, %g], want [%g, %g]",
				tc.cargo, r.MinTons, r.MaxTons, tc.min, tc.max)
		}
	}
}

func TestCargoType_String(t *testing.T) {
	if Grain.String() != "grain" || Oil.String() != "oil" || General.String() != "general" {
		t.Errorf("cargo names: got %s/%s/%s", Grain, Oil, General)
	}
}
