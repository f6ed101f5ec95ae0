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

import "fmt"

// CanopyEvapType selects the canopy evaporation sub-model.
type CanopyEvapType int

const (
	// CanopyEvapRutter evaporates proportionally to canopy storage
	// (Rutter conceptual model).
	CanopyEvapRutter CanopyEvapType = iota
	// CanopyEvapMaximum evaporates at the PET rate.
	CanopyEvapMaximum
	// CanopyEvapAll evaporates all canopy storage within one step
	// (HBV model).
	CanopyEvapAll
)

var canopyEvapTypeNames = map[CanopyEvapType]string{
	CanopyEvapRutter:  "CANEVP_RUTTER",
	CanopyEvapMaximum: "CANEVP_MAXIMUM",
	CanopyEvapAll:     "CANEVP_ALL",
}

func (t CanopyEvapType) String() string {
	if s, ok := canopyEvapTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("CanopyEvapType(%d)", int(t))
}

// CanopyEvapTypeFromString returns the sub-model with the given name,
// or -1 if the name is not recognized.
func CanopyEvapTypeFromString(name string) CanopyEvapType {
	for t, s := range canopyEvapTypeNames {
		if s == name {
			return t
		}
	}
	return CanopyEvapType(-1)
}

// CanopyEvap calculates the loss of intercepted water from the canopy
// to the atmosphere. Connection 0 moves water from the canopy to the
// atmosphere; connection 1 records the granted rate in the AET
// accumulator.
type CanopyEvap struct {
	baseProcess
	etype CanopyEvapType
}

// NewCanopyEvap constructs a canopy evaporation process using the
// given sub-model.
func NewCanopyEvap(etype CanopyEvapType, sv StateIndexer) *CanopyEvap {
	p := &CanopyEvap{baseProcess: newBaseProcess("CanopyEvap", sv), etype: etype}
	p.specifyConnections(2)
	p.conns[0] = Connection{From: sv.Index(Canopy), To: sv.Index(Atmosphere)}
	iAET := sv.Index(AET)
	p.conns[1] = Connection{From: iAET, To: iAET}
	return p
}

// Initialize validates connection endpoint types.
func (p *CanopyEvap) Initialize() error {
	if err := p.validateEndpoint(0, true, Canopy); err != nil {
		return err
	}
	return p.validateEndpoint(0, false, Atmosphere)
}

// RatesOfChange returns the rate of water loss from the canopy to the
// atmosphere [mm/d]. With the Rutter model, evaporation is
// proportional to canopy storage; with the maximum model it occurs at
// PET; with the all model the canopy empties within the step.
func (p *CanopyEvap) RatesOfChange(state []float64, hru *HydroUnit, opts *Options, t TimeStep, rates []float64) error {
	p.checkRates(rates)
	if hru.Type != HRUStandard && hru.Type != HRUWetland {
		return nil
	}

	fc := hru.Surface.ForestCoverage
	cap := hru.VegState.Capacity
	rates[0] = 0.0 // default
	if fc == 0 {
		return nil
	}

	pet := p.competitivePET(hru.Forcing.PET, state, opts)
	// correct for potentially invalid storage
	stor := min(max(state[p.conns[0].From], 0.0), cap*fc)

	var petUsed float64 // [mm/d]
	switch p.etype {
	case CanopyEvapRutter:
		ft := hru.Veg.TrunkFraction
		if p.sv.Index(Trunk) == IndexNotFound {
			ft = 0.0 // overrides if trunk not explicitly modeled
		}
		rates[0] = (1.0 - ft) * fc * pet * (stor / (cap * fc))
		petUsed = rates[0]
	case CanopyEvapMaximum:
		rates[0] = fc * pet
		petUsed = rates[0]
	case CanopyEvapAll:
		// all canopy mass evaporates 'instantaneously'
		rates[0] = state[p.conns[0].From] / opts.Timestep
		petUsed = rates[0]
	default:
		return &StubError{Process: p.name, Feature: fmt.Sprintf("canopy evaporation algorithm %v", p.etype)}
	}

	rates[1] = petUsed
	return nil
}

// ApplyConstraints ensures evaporation cannot drain the canopy below
// zero within the step, and removes any clamped amount from the AET
// accumulator rate.
func (p *CanopyEvap) ApplyConstraints(state []float64, hru *HydroUnit, opts *Options, t TimeStep, rates []float64) {
	p.checkRates(rates)
	if hru.Type != HRUStandard && hru.Type != HRUWetland {
		return
	}

	oldRate := rates[0]

	// must be positive
	rates[0] = max(rates[0], 0.0)

	// can't remove more than is there
	rates[0] = min(rates[0], state[p.conns[0].From]/opts.Timestep)

	// update AET
	rates[1] -= oldRate - rates[0]
}
