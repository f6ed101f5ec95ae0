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

// ParamClass identifies which property table a required parameter
// belongs to.
type ParamClass int

const (
	ClassVegetation ParamClass = iota
	ClassLanduse
	ClassSoil
	ClassTerrain
	ClassGlobal
)

var paramClassNames = map[ParamClass]string{
	ClassVegetation: "VEGETATION",
	ClassLanduse:    "LANDUSE",
	ClassSoil:       "SOIL",
	ClassTerrain:    "TERRAIN",
	ClassGlobal:     "GLOBAL",
}

func (c ParamClass) String() string {
	if s, ok := paramClassNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ParamClass(%d)", int(c))
}

// ParamSpec names one parameter a process sub-model requires, together
// with the property class it comes from.
type ParamSpec struct {
	Name  string
	Class ParamClass
}

// SVSpec names one storage compartment a process sub-model requires.
// Layer is LayerNone for layerless compartments.
type SVSpec struct {
	Type  SVType
	Layer int
}

// The participation queries below are static: they answer purely from
// the sub-model selector, with no instance and no state access, so a
// model builder can validate an entire configuration (and auto-create
// compartments) before constructing any process. Calling a query twice
// with the same selector returns identical, freshly allocated lists.

// CanopyEvapParams returns the parameters required by the given canopy
// evaporation sub-model.
func CanopyEvapParams(t CanopyEvapType) ([]ParamSpec, error) {
	switch t {
	case CanopyEvapRutter:
		return []ParamSpec{
			{"FOREST_COVERAGE", ClassLanduse},
			{"MAX_CAPACITY", ClassVegetation},
			{"TRUNK_FRACTION", ClassVegetation},
		}, nil
	case CanopyEvapMaximum:
		return []ParamSpec{
			{"FOREST_COVERAGE", ClassLanduse},
		}, nil
	case CanopyEvapAll:
		return []ParamSpec{}, nil
	default:
		return nil, configErrorf("CanopyEvap", "undefined canopy evaporation algorithm %v", t)
	}
}

// CanopyEvapStateVars returns the storage compartments required by the
// given canopy evaporation sub-model.
func CanopyEvapStateVars(t CanopyEvapType) []SVSpec {
	return []SVSpec{
		{Canopy, LayerNone},
		{Atmosphere, LayerNone},
		{AET, LayerNone},
	}
}

// CanopySublimationParams returns the parameters required by the given
// canopy snow sublimation sub-model.
func CanopySublimationParams(t SublimationType) ([]ParamSpec, error) {
	switch t {
	case SublimMaximum:
		return []ParamSpec{
			{"FOREST_COVERAGE", ClassLanduse},
		}, nil
	case SublimSverdrup, SublimKuzmin:
		return []ParamSpec{
			{"SNOW_ROUGHNESS", ClassGlobal},
		}, nil
	default: // most don't have parameters
		return []ParamSpec{}, nil
	}
}

// CanopySublimationStateVars returns the storage compartments required
// by the given canopy snow sublimation sub-model.
func CanopySublimationStateVars(t SublimationType) []SVSpec {
	return []SVSpec{
		{CanopySnow, LayerNone},
		{Atmosphere, LayerNone},
		{AET, LayerNone},
	}
}

// CanopyDripParams returns the parameters required by the given canopy
// drip sub-model.
func CanopyDripParams(t CanopyDripType) ([]ParamSpec, error) {
	switch t {
	case CanopyDripRutter:
		return []ParamSpec{
			{"FOREST_COVERAGE", ClassLanduse},
			{"MAX_CAPACITY", ClassVegetation},
			{"STEMFLOW_FRAC", ClassVegetation},
		}, nil
	case CanopyDripSlowDrain:
		return []ParamSpec{
			{"DRIP_PROPORTION", ClassVegetation},
			{"MAX_CAPACITY", ClassVegetation},
			{"FOREST_COVERAGE", ClassLanduse},
		}, nil
	default:
		return nil, configErrorf("CanopyDrip", "undefined canopy drip algorithm %v", t)
	}
}

// CanopyDripStateVars returns the storage compartments required by the
// given canopy drip sub-model. The 'to' compartment is user specified
// and therefore not listed.
func CanopyDripStateVars(t CanopyDripType) []SVSpec {
	return []SVSpec{
		{Canopy, LayerNone},
	}
}

// AdvectionParams returns the parameters required by advective
// transport (none; everything comes from the transport model).
func AdvectionParams() ([]ParamSpec, error) {
	return []ParamSpec{}, nil
}

// AdvectionStateVars returns the storage compartments required by
// advective transport. Constituent storages are supplied by the
// transport model, so no layer is specified.
func AdvectionStateVars() []SVSpec {
	return []SVSpec{
		{Constituent, LayerNone},
	}
}
