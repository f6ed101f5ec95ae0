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

import "testing"

// Proportional-to-storage evaporation: forest coverage 0.6, capacity
// 5 mm, storage 4 mm, no trunk, PET 3 mm/d; the storage clamp caps
// storage at 0.6×5 = 3 mm, so the rate is 0.6×3×(3/3) = 1.8 mm/d.
func TestCanopyEvapRutter(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()
	hru := testHRU()
	hru.Veg.TrunkFraction = 0.5 // must be overridden: no trunk compartment

	p := NewCanopyEvap(CanopyEvapRutter, sv)
	if err := p.Initialize(); err != nil {
		t.Fatal(err)
	}

	state := make([]float64, sv.Len())
	state[sv.Index(Canopy)] = 4

	rates := make([]float64, 2)
	if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
		t.Fatal(err)
	}
	if different(rates[0], 1.8, testTolerance) {
		t.Errorf("rate = %g mm/d, want 1.8", rates[0])
	}
	if different(rates[1], 1.8, testTolerance) {
		t.Errorf("accumulator rate = %g mm/d, want 1.8", rates[1])
	}

	p.ApplyConstraints(state, hru, opts, TimeStep{}, rates)
	if different(rates[0], 1.8, testTolerance) {
		t.Errorf("constrained rate = %g mm/d, want 1.8 (no clamp should apply)", rates[0])
	}
}

// With a trunk compartment registered, the declared trunk fraction is
// honored rather than overridden to zero.
func TestCanopyEvapRutterTrunk(t *testing.T) {
	sv := testStateVars()
	sv.Add(Trunk, LayerNone)
	opts := testOptions()
	hru := testHRU()
	hru.Veg.TrunkFraction = 0.5

	p := NewCanopyEvap(CanopyEvapRutter, sv)
	state := make([]float64, sv.Len())
	state[sv.Index(Canopy)] = 4

	rates := make([]float64, 2)
	if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
		t.Fatal(err)
	}
	if different(rates[0], 0.9, testTolerance) { // (1-0.5)×1.8
		t.Errorf("rate = %g mm/d, want 0.9", rates[0])
	}
}

func TestCanopyEvapMaximum(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()
	hru := testHRU()

	p := NewCanopyEvap(CanopyEvapMaximum, sv)
	state := make([]float64, sv.Len())
	state[sv.Index(Canopy)] = 4

	rates := make([]float64, 2)
	if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
		t.Fatal(err)
	}
	if different(rates[0], 0.6*3, testTolerance) {
		t.Errorf("rate = %g mm/d, want 1.8", rates[0])
	}
}

// The all-storage model empties the canopy in one step regardless of
// PET.
func TestCanopyEvapAll(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()
	opts.Timestep = 0.25
	hru := testHRU()
	hru.Forcing.PET = 0.01

	p := NewCanopyEvap(CanopyEvapAll, sv)
	state := make([]float64, sv.Len())
	state[sv.Index(Canopy)] = 4

	rates := make([]float64, 2)
	if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
		t.Fatal(err)
	}
	if different(rates[0], 4/0.25, testTolerance) {
		t.Errorf("rate = %g mm/d, want 16", rates[0])
	}
}

// Zero forest coverage yields an all-zero rate vector regardless of
// storage or PET.
func TestCanopyEvapZeroCoverage(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()

	for _, etype := range []CanopyEvapType{CanopyEvapRutter, CanopyEvapMaximum, CanopyEvapAll} {
		hru := testHRU()
		hru.Surface.ForestCoverage = 0
		hru.Forcing.PET = 100

		p := NewCanopyEvap(etype, sv)
		state := make([]float64, sv.Len())
		state[sv.Index(Canopy)] = 50

		rates := []float64{0, 0}
		if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
			t.Fatal(err)
		}
		if rates[0] != 0 || rates[1] != 0 {
			t.Errorf("%v: nonzero rates %v with zero coverage", etype, rates)
		}
	}
}

// When the supply clamp reduces the primary rate by Δ, the accumulator
// rate must drop by exactly Δ.
func TestCanopyEvapAccumulatorConsistency(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()
	hru := testHRU()
	hru.Surface.ForestCoverage = 1
	hru.Forcing.PET = 10 // far above supply

	p := NewCanopyEvap(CanopyEvapMaximum, sv)
	state := make([]float64, sv.Len())
	state[sv.Index(Canopy)] = 2

	rates := make([]float64, 2)
	if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
		t.Fatal(err)
	}
	proposed := rates[0]
	proposedAET := rates[1]
	p.ApplyConstraints(state, hru, opts, TimeStep{}, rates)

	if different(rates[0], 2, testTolerance) {
		t.Errorf("constrained rate = %g mm/d, want 2 (supply limited)", rates[0])
	}
	delta := proposed - rates[0]
	if absDifferent(proposedAET-rates[1], delta) {
		t.Errorf("accumulator dropped by %g, want %g", proposedAET-rates[1], delta)
	}
}

func TestCanopyEvapTypeNames(t *testing.T) {
	for _, etype := range []CanopyEvapType{CanopyEvapRutter, CanopyEvapMaximum, CanopyEvapAll} {
		if got := CanopyEvapTypeFromString(etype.String()); got != etype {
			t.Errorf("round trip %v -> %q -> %v", etype, etype.String(), got)
		}
	}
	if got := CanopyEvapTypeFromString("CANEVP_BOGUS"); got != CanopyEvapType(-1) {
		t.Errorf("unknown name resolved to %v", got)
	}
}
