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
	"fmt"
	"math"
)

// SublimationType selects the snow sublimation sub-model.
type SublimationType int

const (
	// SublimMaximum sublimates at the PET rate.
	SublimMaximum SublimationType = iota
	// SublimAll sublimates all canopy snow within one step.
	SublimAll
	// SublimSverdrup uses the Sverdrup (1946) bulk-transfer formula.
	SublimSverdrup
	// SublimKuzmin uses the Kuzmin (1953) empirical formula.
	SublimKuzmin
)

var sublimationTypeNames = map[SublimationType]string{
	SublimMaximum:  "SUBLIM_MAXIMUM",
	SublimAll:      "SUBLIM_ALL",
	SublimSverdrup: "SUBLIM_SVERDRUP",
	SublimKuzmin:   "SUBLIM_KUZMIN",
}

func (t SublimationType) String() string {
	if s, ok := sublimationTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("SublimationType(%d)", int(t))
}

// SublimationTypeFromString returns the sub-model with the given name,
// or -1 if the name is not recognized.
func SublimationTypeFromString(name string) SublimationType {
	for t, s := range sublimationTypeNames {
		if s == name {
			return t
		}
	}
	return SublimationType(-1)
}

// CanopySublimation calculates the loss of intercepted snow from the
// canopy to the atmosphere. Connection 0 moves snow water equivalent
// from the canopy snow compartment to the atmosphere; connection 1
// records the granted rate in the AET accumulator.
type CanopySublimation struct {
	baseProcess
	stype SublimationType
}

// NewCanopySublimation constructs a canopy snow sublimation process
// using the given sub-model.
func NewCanopySublimation(stype SublimationType, sv StateIndexer) *CanopySublimation {
	p := &CanopySublimation{baseProcess: newBaseProcess("CanopySublimation", sv), stype: stype}
	p.specifyConnections(2)
	p.conns[0] = Connection{From: sv.Index(CanopySnow), To: sv.Index(Atmosphere)}
	iAET := sv.Index(AET)
	p.conns[1] = Connection{From: iAET, To: iAET}
	return p
}

// Initialize validates connection endpoint types.
func (p *CanopySublimation) Initialize() error {
	if err := p.validateEndpoint(0, true, CanopySnow); err != nil {
		return err
	}
	return p.validateEndpoint(0, false, Atmosphere)
}

// RatesOfChange returns the rate of loss from canopy snow water
// equivalent to the atmosphere [mm/d].
//
// The wind-driven sub-models (Sverdrup, Kuzmin) need the wind velocity
// at the canopy top, and the adjustment from the measurement height is
// not yet resolved; those paths fail with a *StubError rather than
// silently underperform.
func (p *CanopySublimation) RatesOfChange(state []float64, hru *HydroUnit, opts *Options, t TimeStep, rates []float64) error {
	p.checkRates(rates)
	if hru.Type != HRUStandard && hru.Type != HRUWetland {
		return nil
	}

	fc := hru.Surface.ForestCoverage
	rates[0] = 0.0 // default
	if fc == 0 {
		return nil
	}

	pet := p.competitivePET(hru.Forcing.PET, state, opts)

	var petUsed float64 // [mm/d]
	switch p.stype {
	case SublimMaximum:
		// canopy snow sublimates (up to threshold) based upon PET
		rates[0] = fc * pet
		petUsed = rates[0]
	case SublimAll:
		// all canopy snow sublimates 'instantaneously' to atmosphere
		rates[0] = state[p.conns[0].From] / opts.Timestep
		petUsed = rates[0]
	default:
		// SublimationRate wants the wind velocity at the canopy top;
		// hru.Forcing.WindVel is at the measurement height and the
		// AdjustWindVel correction for this case is unresolved.
		return &StubError{Process: p.name, Feature: "wind velocity height adjustment for canopy sublimation"}
	}

	rates[1] = petUsed
	return nil
}

// ApplyConstraints ensures sublimation cannot drain the canopy snow
// below zero within the step, and removes any clamped amount from the
// AET accumulator rate. Sublimation rates are derived non-negative, so
// no sign clamp is needed.
func (p *CanopySublimation) ApplyConstraints(state []float64, hru *HydroUnit, opts *Options, t TimeStep, rates []float64) {
	p.checkRates(rates)
	if hru.Type != HRUStandard && hru.Type != HRUWetland {
		return
	}

	oldRate := rates[0]

	// can't remove more than is there
	rates[0] = min(rates[0], state[p.conns[0].From]/opts.Timestep)

	// update AET
	rates[1] -= oldRate - rates[0]
}

// SublimationRate returns the open-snow sublimation rate [mm/d] for
// the given forcing, snow surface temperature [°C], snow roughness
// length [m], and sub-model. The rate is floored at zero: deposition
// is not modeled here.
func SublimationRate(f *ForcingData, snowTemp, roughness float64, stype SublimationType) (float64, error) {
	// vapor pressure over the snow surface and in the air, kPa
	es := saturatedVaporPressure(min(f.TempAve, snowTemp))
	ea := saturatedVaporPressure(f.TempAve) * f.RelHumidity

	switch stype {
	case SublimSverdrup:
		// Sverdrup (1946) bulk transfer at the measurement height.
		const measurementHt = 2.0 // m
		qs := airDryRatio * es / f.AirPres // specific humidity, kg/kg
		qa := airDryRatio * ea / f.AirPres
		lnz := math.Log(measurementHt / roughness)
		// kg/m²/s; 1 kg/m² of water is 1 mm
		flux := f.AirDens * vonKarman * vonKarman * f.WindVel * (qs - qa) / (lnz * lnz)
		return max(flux*secPerDay, 0.0), nil
	case SublimKuzmin:
		// Kuzmin (1953), vapor pressures in mb
		return max((0.18+0.098*f.WindVel)*mbPerKPa*(es-ea), 0.0), nil
	default:
		return 0, &StubError{Process: "SublimationRate", Feature: fmt.Sprintf("sublimation algorithm %v", stype)}
	}
}
