/*
Copyright © 2026 the Raven authors.
This file is part of Raven.

Raven is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Raven is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Raven.  If not, see <http://www.gnu.org/licenses/>.
*/

package raven

import (
	"reflect"
	"testing"
)

// Participation queries are deterministic and return fresh slices on
// every call.
func TestParticipationDeterminism(t *testing.T) {
	a, err := CanopyEvapParams(CanopyEvapRutter)
	if err != nil {
		t.Fatal(err)
	}
	b, err := CanopyEvapParams(CanopyEvapRutter)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated query differs: %v vs %v", a, b)
	}
	if len(a) > 0 && &a[0] == &b[0] {
		t.Error("repeated query shares backing array")
	}

	sa := CanopyEvapStateVars(CanopyEvapRutter)
	sb := CanopyEvapStateVars(CanopyEvapRutter)
	if !reflect.DeepEqual(sa, sb) {
		t.Errorf("repeated state var query differs: %v vs %v", sa, sb)
	}
	if &sa[0] == &sb[0] {
		t.Error("repeated state var query shares backing array")
	}
}

// The parameter lists name what each sub-model reads.
func TestCanopyEvapParticipation(t *testing.T) {
	cases := []struct {
		etype CanopyEvapType
		want  []ParamSpec
	}{
		{CanopyEvapRutter, []ParamSpec{
			{"FOREST_COVERAGE", ClassLanduse},
			{"MAX_CAPACITY", ClassVegetation},
			{"TRUNK_FRACTION", ClassVegetation},
		}},
		{CanopyEvapMaximum, []ParamSpec{
			{"FOREST_COVERAGE", ClassLanduse},
		}},
		{CanopyEvapAll, []ParamSpec{}},
	}
	for _, c := range cases {
		got, err := CanopyEvapParams(c.etype)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%v: params = %v, want %v", c.etype, got, c.want)
		}
	}

	svs := CanopyEvapStateVars(CanopyEvapRutter)
	want := []SVSpec{{Canopy, LayerNone}, {Atmosphere, LayerNone}, {AET, LayerNone}}
	if !reflect.DeepEqual(svs, want) {
		t.Errorf("state vars = %v, want %v", svs, want)
	}
}

func TestCanopyDripParticipation(t *testing.T) {
	got, err := CanopyDripParams(CanopyDripSlowDrain)
	if err != nil {
		t.Fatal(err)
	}
	want := []ParamSpec{
		{"DRIP_PROPORTION", ClassVegetation},
		{"MAX_CAPACITY", ClassVegetation},
		{"FOREST_COVERAGE", ClassLanduse},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("params = %v, want %v", got, want)
	}

	svs := CanopyDripStateVars(CanopyDripRutter)
	if !reflect.DeepEqual(svs, []SVSpec{{Canopy, LayerNone}}) {
		t.Errorf("state vars = %v; destination is user specified and must not be listed", svs)
	}
}

func TestCanopySublimationParticipation(t *testing.T) {
	got, err := CanopySublimationParams(SublimSverdrup)
	if err != nil {
		t.Fatal(err)
	}
	want := []ParamSpec{{"SNOW_ROUGHNESS", ClassGlobal}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("params = %v, want %v", got, want)
	}

	got, err = CanopySublimationParams(SublimAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("SUBLIM_ALL should need no parameters, got %v", got)
	}
}

// Undefined selectors are configuration errors, not silent empties.
func TestParticipationUndefinedSelector(t *testing.T) {
	if _, err := CanopyEvapParams(CanopyEvapType(99)); err == nil {
		t.Error("expected error for undefined evaporation selector")
	} else if _, ok := err.(*ConfigError); !ok {
		t.Errorf("error has type %T, want *ConfigError", err)
	}

	if _, err := CanopyDripParams(CanopyDripType(99)); err == nil {
		t.Error("expected error for undefined drip selector")
	} else if _, ok := err.(*ConfigError); !ok {
		t.Errorf("error has type %T, want *ConfigError", err)
	}
}
