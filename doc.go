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

// Package raven implements the mass-transfer process framework of a
// semi-distributed hydrologic model. Water, snow, and solutes move
// between named storage compartments of a hydrologic response unit
// (HRU) through processes that each propose rates of change and then
// constrain them so that no compartment is driven negative within a
// time step.
//
// Every physical mechanism (canopy evaporation, canopy snow
// sublimation, canopy drip, advective solute transport, ...) satisfies
// the Process interface: it declares a fixed list of
// (source, destination) connections at construction, validates the
// semantic types of its endpoints in Initialize, proposes rates in
// RatesOfChange, and corrects them in ApplyConstraints. The framework
// never writes the state vector from within a process; an integrator
// (Model.Step here, or an external one) applies the corrected rates.
//
// Each process family also provides static participation queries
// (for example CanopyEvapParams and CanopyEvapStateVars) that report,
// without an instance, which parameters and storage compartments a
// given sub-model requires. A model builder uses these to validate a
// configuration before any simulation step runs.
package raven

// Version gives the current model version.
const Version = "1.0.0"
