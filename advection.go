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

// TransportModel supplies constituent information for advective
// transport: index resolution, concentrations, and the corrected water
// fluxes of the companion water process for the current step. It is an
// external collaborator; this package only consumes it.
type TransportModel interface {
	// ConstituentIndex returns the index of the named constituent, or
	// IndexNotFound.
	ConstituentIndex(name string) int
	// StorageIndex returns the state vector offset holding the mass of
	// constituent c stored in the water compartment at offset iWater,
	// or IndexNotFound.
	StorageIndex(c, iWater int) int
	// Concentration returns the concentration [mg/mm of water] of
	// constituent c in the water compartment at offset iWater.
	Concentration(state []float64, c, iWater int) float64
	// WaterConnections lists the water-flux connections that advection
	// mirrors, in evaluation order.
	WaterConnections() []Connection
	// WaterFlux returns the corrected water flux [mm/d] of water
	// connection q for the current step.
	WaterFlux(q int) float64
}

// Advection calculates the advective movement of a dissolved
// constituent: mass flux proportional to the corrected water fluxes of
// a companion water process, with the concentration taken from the
// donor compartment.
type Advection struct {
	baseProcess
	constitName string
	constit     int
	tm          TransportModel
	waterConns  []Connection
}

// NewAdvection constructs an advection process for the named
// constituent, mirroring the water connections reported by tm.
func NewAdvection(constitName string, tm TransportModel, sv StateIndexer) (*Advection, error) {
	c := tm.ConstituentIndex(constitName)
	if c == IndexNotFound {
		return nil, configErrorf("Advection", "unknown constituent %q", constitName)
	}
	p := &Advection{
		baseProcess: newBaseProcess("Advection", sv),
		constitName: constitName,
		constit:     c,
		tm:          tm,
		waterConns:  tm.WaterConnections(),
	}
	p.specifyConnections(len(p.waterConns))
	for q, wc := range p.waterConns {
		p.conns[q] = Connection{
			From: tm.StorageIndex(c, wc.From),
			To:   tm.StorageIndex(c, wc.To),
		}
	}
	return p, nil
}

// Initialize validates that every mirrored endpoint resolves to a
// constituent storage compartment.
func (p *Advection) Initialize() error {
	for q := range p.conns {
		if err := p.validateEndpoint(q, true, Constituent); err != nil {
			return err
		}
		if err := p.validateEndpoint(q, false, Constituent); err != nil {
			return err
		}
	}
	return nil
}

// RatesOfChange returns one constituent mass flux [mg/d] per mirrored
// water connection: the water flux times the concentration in the
// donor compartment (the source for forward flow, the destination for
// reversed flow).
func (p *Advection) RatesOfChange(state []float64, hru *HydroUnit, opts *Options, t TimeStep, rates []float64) error {
	p.checkRates(rates)
	for q, wc := range p.waterConns {
		flux := p.tm.WaterFlux(q)
		var conc float64
		if flux >= 0 {
			conc = p.tm.Concentration(state, p.constit, wc.From)
		} else {
			conc = p.tm.Concentration(state, p.constit, wc.To)
		}
		rates[q] = flux * conc
	}
	return nil
}

// ApplyConstraints caps each mass flux so the donor constituent
// storage cannot go negative within the step, in either flow
// direction.
func (p *Advection) ApplyConstraints(state []float64, hru *HydroUnit, opts *Options, t TimeStep, rates []float64) {
	p.checkRates(rates)
	for q, c := range p.conns {
		rates[q] = min(rates[q], state[c.From]/opts.Timestep)
		rates[q] = max(rates[q], -state[c.To]/opts.Timestep)
	}
}
