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

// Options holds global run options. It is passed explicitly into every
// process call; there are no hidden globals.
type Options struct {
	// Timestep is the simulation step length in days.
	Timestep float64

	// SuppressCompetitiveET disables the competitive-extraction
	// adjustment: when false (the default), each ET-consuming process
	// reduces the potential evapotranspiration available to it by the
	// amount already recorded in the AET accumulator this step.
	SuppressCompetitiveET bool

	// PETMethod selects the formula used to generate potential
	// evapotranspiration forcing when it is not read from data.
	PETMethod PETType

	// WindMeasurementHeight is the height above the zero plane at
	// which wind forcing was measured [m].
	WindMeasurementHeight float64

	// SnowRoughness is the global snow surface roughness length [m]
	// used by wind-driven sublimation formulas.
	SnowRoughness float64
}

// TimeStep identifies the point in simulation time at which a process
// evaluation takes place.
type TimeStep struct {
	ModelTime float64 // days since simulation start
	Step      int     // step index
	DayOfYear int
}
