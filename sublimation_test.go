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
	"errors"
	"math"
	"testing"
)

func TestCanopySublimationMaximum(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()
	hru := testHRU()

	p := NewCanopySublimation(SublimMaximum, sv)
	if err := p.Initialize(); err != nil {
		t.Fatal(err)
	}

	state := make([]float64, sv.Len())
	state[sv.Index(CanopySnow)] = 10

	rates := make([]float64, 2)
	if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
		t.Fatal(err)
	}
	if different(rates[0], 0.6*3, testTolerance) {
		t.Errorf("rate = %g mm/d, want 1.8", rates[0])
	}
	if different(rates[1], rates[0], testTolerance) {
		t.Errorf("accumulator rate = %g, want %g", rates[1], rates[0])
	}
}

func TestCanopySublimationAll(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()
	opts.Timestep = 0.5
	hru := testHRU()

	p := NewCanopySublimation(SublimAll, sv)
	state := make([]float64, sv.Len())
	state[sv.Index(CanopySnow)] = 3

	rates := make([]float64, 2)
	if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
		t.Fatal(err)
	}
	if different(rates[0], 6, testTolerance) {
		t.Errorf("rate = %g mm/d, want 6", rates[0])
	}
}

// The wind-driven sub-models are stubs in the canopy context: the
// height adjustment is unresolved, so they must fail loudly.
func TestCanopySublimationWindStub(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()
	hru := testHRU()

	for _, stype := range []SublimationType{SublimSverdrup, SublimKuzmin} {
		p := NewCanopySublimation(stype, sv)
		state := make([]float64, sv.Len())
		state[sv.Index(CanopySnow)] = 3

		rates := make([]float64, 2)
		err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates)
		if err == nil {
			t.Fatalf("%v: expected stub error", stype)
		}
		var stub *StubError
		if !errors.As(err, &stub) {
			t.Errorf("%v: error has type %T, want *StubError", stype, err)
		}
	}
}

// Clamping the primary rate must shrink the accumulator rate by the
// same amount.
func TestCanopySublimationAccumulatorConsistency(t *testing.T) {
	sv := testStateVars()
	opts := testOptions()
	hru := testHRU()
	hru.Surface.ForestCoverage = 1
	hru.Forcing.PET = 10

	p := NewCanopySublimation(SublimMaximum, sv)
	state := make([]float64, sv.Len())
	state[sv.Index(CanopySnow)] = 1

	rates := make([]float64, 2)
	if err := p.RatesOfChange(state, hru, opts, TimeStep{}, rates); err != nil {
		t.Fatal(err)
	}
	proposed := rates[0]
	p.ApplyConstraints(state, hru, opts, TimeStep{}, rates)
	if different(rates[0], 1, testTolerance) {
		t.Errorf("constrained rate = %g mm/d, want 1", rates[0])
	}
	if absDifferent(rates[1], rates[0]) {
		t.Errorf("accumulator rate = %g after clamp of %g, want %g",
			rates[1], proposed-rates[0], rates[0])
	}
}

// Kuzmin (1953): E = (0.18 + 0.098 u) (es − ea) with vapor pressures
// in mb. Saturated air gives zero; dry air matches the hand-computed
// value.
func TestSublimationRateKuzmin(t *testing.T) {
	f := &ForcingData{
		TempAve:     -5,
		RelHumidity: 1,
		WindVel:     3,
	}
	r, err := SublimationRate(f, -5, 0.005, SublimKuzmin)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(r, 0) {
		t.Errorf("saturated air: rate = %g mm/d, want 0", r)
	}

	f.RelHumidity = 0.5
	es := 0.6108 * math.Exp(17.27*(-5.0)/(-5.0+237.3))
	want := (0.18 + 0.098*3) * 10 * (es - es*0.5)
	r, err = SublimationRate(f, -5, 0.005, SublimKuzmin)
	if err != nil {
		t.Fatal(err)
	}
	if different(r, want, testTolerance) {
		t.Errorf("rate = %g mm/d, want %g", r, want)
	}
}

// Sverdrup (1946): bulk transfer, checked against a hand evaluation of
// the formula, and zero under deposition conditions.
func TestSublimationRateSverdrup(t *testing.T) {
	f := &ForcingData{
		TempAve:     -5,
		RelHumidity: 0.5,
		WindVel:     3,
		AirPres:     101.3,
		AirDens:     1.29,
	}
	const z0 = 0.005
	es := 0.6108 * math.Exp(17.27*(-5.0)/(-5.0+237.3))
	qs := 0.622 * es / 101.3
	qa := 0.622 * es * 0.5 / 101.3
	lnz := math.Log(2.0 / z0)
	want := 1.29 * 0.42 * 0.42 * 3 * (qs - qa) / (lnz * lnz) * 86400

	r, err := SublimationRate(f, -5, z0, SublimSverdrup)
	if err != nil {
		t.Fatal(err)
	}
	if different(r, want, testTolerance) {
		t.Errorf("rate = %g mm/d, want %g", r, want)
	}

	// humid air over cold snow: vapor gradient reverses, rate floors at 0
	f.RelHumidity = 1
	r, err = SublimationRate(f, -15, z0, SublimSverdrup)
	if err != nil {
		t.Fatal(err)
	}
	if r != 0 {
		t.Errorf("deposition conditions: rate = %g mm/d, want 0", r)
	}
}

func TestSublimationRateStub(t *testing.T) {
	_, err := SublimationRate(&ForcingData{}, 0, 0.005, SublimMaximum)
	var stub *StubError
	if !errors.As(err, &stub) {
		t.Errorf("error = %v, want *StubError", err)
	}
}
