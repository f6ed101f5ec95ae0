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

	"gonum.org/v1/gonum/floats"
)

// Model assembles storage compartments and an ordered list of
// mass-transfer processes into a runnable water balance. Processes are
// evaluated strictly in registration order within each time step;
// order matters because each process sees the state left by the ones
// before it, in particular the AET accumulator.
type Model struct {
	StateVars
	Options Options

	procs []Process
	rates [][]float64

	initialized bool
}

// NewModel returns an empty model with the given options.
func NewModel(opts Options) *Model {
	return &Model{Options: opts}
}

// AddStateVars registers the given compartments, typically obtained
// from the participation queries before any process is constructed.
// Re-registering an existing compartment is harmless.
func (m *Model) AddStateVars(svs []SVSpec) {
	for _, sv := range svs {
		m.Add(sv.Type, sv.Layer)
	}
}

// AddProcess appends p to the evaluation sequence.
func (m *Model) AddProcess(p Process) {
	m.procs = append(m.procs, p)
	m.rates = append(m.rates, make([]float64, len(p.Connections())))
	m.initialized = false
}

// Processes returns the evaluation sequence.
func (m *Model) Processes() []Process {
	out := make([]Process, len(m.procs))
	copy(out, m.procs)
	return out
}

// Initialize validates the model configuration: a positive time step,
// every process's connection endpoints, and every connection offset in
// range. It must be called (and succeed) before Step.
func (m *Model) Initialize() error {
	if !(m.Options.Timestep > 0) {
		return configErrorf("Model", "time step must be positive, got %g", m.Options.Timestep)
	}
	n := m.Len()
	for _, p := range m.procs {
		if err := p.Initialize(); err != nil {
			return err
		}
		for q, c := range p.Connections() {
			if c.From < 0 || c.From >= n || c.To < 0 || c.To >= n {
				return configErrorf(p.Name(),
					"connection %d (%d→%d) is outside the %d registered compartments",
					q, c.From, c.To, n)
			}
		}
	}
	m.initialized = true
	return nil
}

// Step advances state over one time step for a single hydrologic unit.
// Diagnostic accumulators are zeroed first, then each process is
// evaluated, constrained, and applied before the next one runs. A
// connection with From == To accumulates rate·Δt into its compartment;
// all other connections move rate·Δt from source to destination.
func (m *Model) Step(state []float64, hru *HydroUnit, t TimeStep) error {
	if !m.initialized {
		return configErrorf("Model", "Step called before Initialize")
	}
	if len(state) != m.Len() {
		return fmt.Errorf("raven: state vector has length %d, want %d", len(state), m.Len())
	}
	dt := m.Options.Timestep

	for i := 0; i < m.Len(); i++ {
		if m.TypeOf(i) == AET {
			state[i] = 0
		}
	}

	for j, p := range m.procs {
		rates := m.rates[j]
		for q := range rates {
			rates[q] = 0
		}
		if err := p.RatesOfChange(state, hru, &m.Options, t, rates); err != nil {
			return fmt.Errorf("raven: %s: %w", p.Name(), err)
		}
		p.ApplyConstraints(state, hru, &m.Options, t, rates)
		for q, c := range p.Connections() {
			d := rates[q] * dt
			if c.From == c.To {
				state[c.From] += d
				continue
			}
			state[c.From] -= d
			state[c.To] += d
		}
	}
	return nil
}

// Storage returns the total water held in the model's storage
// compartments, excluding the atmospheric sink and diagnostic
// accumulators. Together with the atmosphere compartment it forms the
// conserved mass balance.
func (m *Model) Storage(state []float64) float64 {
	sum := 0.0
	for i := 0; i < m.Len(); i++ {
		switch m.TypeOf(i) {
		case Atmosphere, AET:
		default:
			sum += state[i]
		}
	}
	return sum
}

// TotalMass returns the sum over all compartments except diagnostic
// accumulators. It is invariant under Step for any process sequence,
// which makes it the cheapest conservation check.
func (m *Model) TotalMass(state []float64) float64 {
	masked := make([]float64, 0, len(state))
	for i, v := range state {
		if m.TypeOf(i) != AET {
			masked = append(masked, v)
		}
	}
	return floats.Sum(masked)
}
