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

// Connection is a directed transfer between two storage compartments,
// identified by their state vector offsets. A connection with
// From == To is a diagnostic accumulator write: the integrator adds
// rate·Δt to the compartment instead of transferring mass.
// Connections are fixed at process construction.
type Connection struct {
	From, To int
}

// Process is the contract every mass-transfer mechanism satisfies.
// A process is a pure function (plus in-place rate corrections) over
// externally supplied state: it never writes the state vector, and it
// must never assume the state reflects rates it proposed earlier in
// the same step. Only the AET accumulator read-back is guaranteed
// current, because the integrator applies each process's corrected
// rates before evaluating the next.
type Process interface {
	// Name identifies the process in error reports and logs.
	Name() string

	// Connections returns the fixed (source, destination) pairs this
	// process transfers mass between. Rate slices are positionally
	// matched to this list.
	Connections() []Connection

	// Initialize validates that every declared connection endpoint
	// resolves to a compartment of the expected semantic type. It
	// returns a *ConfigError on violation. Called once at model build
	// time; never retried.
	Initialize() error

	// RatesOfChange writes one proposed rate [mm/d] per connection
	// into rates. It must not mutate state. Selector branches whose
	// physics are not coded return a *StubError.
	RatesOfChange(state []float64, hru *HydroUnit, opts *Options, t TimeStep, rates []float64) error

	// ApplyConstraints corrects rates in place so that applying them
	// over one step keeps the state physically valid: withdrawal rates
	// are clamped to the available supply, and any amount clamped off
	// a rate that was counted against the AET accumulator is removed
	// from the accumulator rate as well.
	ApplyConstraints(state []float64, hru *HydroUnit, opts *Options, t TimeStep, rates []float64)
}

// baseProcess carries the pieces shared by all process variants: the
// process name, the state indexer, and the connection list.
type baseProcess struct {
	name  string
	sv    StateIndexer
	conns []Connection
}

func newBaseProcess(name string, sv StateIndexer) baseProcess {
	return baseProcess{name: name, sv: sv}
}

// specifyConnections fixes the number of connections. It must be
// called exactly once, from the variant constructor.
func (p *baseProcess) specifyConnections(n int) {
	if p.conns != nil {
		panic(fmt.Sprintf("raven: %s: connections specified twice", p.name))
	}
	p.conns = make([]Connection, n)
}

// Name implements Process.
func (p *baseProcess) Name() string { return p.name }

// Connections implements Process. The returned slice is a copy;
// connections are immutable after construction.
func (p *baseProcess) Connections() []Connection {
	out := make([]Connection, len(p.conns))
	copy(out, p.conns)
	return out
}

// checkRates validates the rate slice length at the call boundary.
// A mismatch is a programming error in the integrator, not a model
// configuration problem.
func (p *baseProcess) checkRates(rates []float64) {
	if len(rates) != len(p.conns) {
		panic(fmt.Sprintf("raven: %s: rates slice has length %d, want %d",
			p.name, len(rates), len(p.conns)))
	}
}

// validateEndpoint checks that connection q's source or destination is
// a compartment of the wanted type.
func (p *baseProcess) validateEndpoint(q int, source bool, want SVType) error {
	i := p.conns[q].To
	end := "go to"
	if source {
		i = p.conns[q].From
		end = "come from"
	}
	if got := p.sv.TypeOf(i); got != want {
		return configErrorf(p.name, "connection %d must %s a %v compartment, not %v",
			q, end, want, got)
	}
	return nil
}

// competitivePET returns the potential evapotranspiration available to
// this process: the raw PET floored at zero, reduced (unless
// suppressed) by the actual ET already granted this step, as recorded
// in the AET accumulator.
func (p *baseProcess) competitivePET(pet float64, state []float64, opts *Options) float64 {
	pet = max(pet, 0.0)
	if !opts.SuppressCompetitiveET {
		if iAET := p.sv.Index(AET); iAET != IndexNotFound {
			pet -= state[iAET] / opts.Timestep
			pet = max(pet, 0.0)
		}
	}
	return pet
}
