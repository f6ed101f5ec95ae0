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

package ravenutil

import (
	"fmt"

	"github.com/BurntSushi/toml"
	raven "github.com/Ouranosinc/RavenHydroFramework"
	"github.com/spf13/cast"
)

// VegetationClass holds the properties of one vegetation class as
// read from the class file.
type VegetationClass struct {
	MaxCapacity     float64 `toml:"max_capacity"`
	MaxSnowCapacity float64 `toml:"max_snow_capacity"`
	TrunkFraction   float64 `toml:"trunk_fraction"`
	StemflowFrac    float64 `toml:"stemflow_frac"`
	DripProportion  float64 `toml:"drip_proportion"`
	Height          float64 `toml:"height"`
	PETCorrection   float64 `toml:"pet_correction"`
}

// LanduseClass holds the properties of one landuse class as read from
// the class file.
type LanduseClass struct {
	ForestCoverage  float64 `toml:"forest_coverage"`
	ImpermeableFrac float64 `toml:"impermeable_frac"`
}

// ClassTables holds the property tables a simulation draws its unit
// parameters from.
type ClassTables struct {
	Vegetation map[string]VegetationClass `toml:"vegetation"`
	Landuse    map[string]LanduseClass    `toml:"landuse"`
	// Global holds scalar global parameters; values are kept untyped
	// because TOML decodes numbers as either int64 or float64.
	Global map[string]interface{} `toml:"global"`
}

// LoadClassTables reads the TOML class file at path.
func LoadClassTables(path string) (*ClassTables, error) {
	ct := new(ClassTables)
	if _, err := toml.DecodeFile(path, ct); err != nil {
		return nil, fmt.Errorf("raven: problem reading class file %s: %v", path, err)
	}
	return ct, nil
}

// vegParam and landuseParam map the parameter names used by the
// participation queries onto class struct fields.
func vegParam(name string, veg VegetationClass) (float64, bool) {
	switch name {
	case "MAX_CAPACITY":
		return veg.MaxCapacity, true
	case "MAX_SNOW_CAPACITY":
		return veg.MaxSnowCapacity, true
	case "TRUNK_FRACTION":
		return veg.TrunkFraction, true
	case "STEMFLOW_FRAC":
		return veg.StemflowFrac, true
	case "DRIP_PROPORTION":
		return veg.DripProportion, true
	case "VEG_HEIGHT":
		return veg.Height, true
	case "PET_CORRECTION":
		return veg.PETCorrection, true
	}
	return 0, false
}

func landuseParam(name string, lu LanduseClass) (float64, bool) {
	switch name {
	case "FOREST_COVERAGE":
		return lu.ForestCoverage, true
	case "IMPERMEABLE_FRAC":
		return lu.ImpermeableFrac, true
	}
	return 0, false
}

// Param resolves one required parameter against the tables, for the
// unit's assigned vegetation and landuse classes.
func (ct *ClassTables) Param(spec raven.ParamSpec, vegClass, landuseClass string) (float64, error) {
	switch spec.Class {
	case raven.ClassVegetation:
		veg, ok := ct.Vegetation[vegClass]
		if !ok {
			return 0, fmt.Errorf("raven: undefined vegetation class %q", vegClass)
		}
		if v, ok := vegParam(spec.Name, veg); ok {
			return v, nil
		}
	case raven.ClassLanduse:
		lu, ok := ct.Landuse[landuseClass]
		if !ok {
			return 0, fmt.Errorf("raven: undefined landuse class %q", landuseClass)
		}
		if v, ok := landuseParam(spec.Name, lu); ok {
			return v, nil
		}
	case raven.ClassGlobal:
		raw, ok := ct.Global[spec.Name]
		if !ok {
			return 0, fmt.Errorf("raven: global parameter %s is not set", spec.Name)
		}
		return cast.ToFloat64E(raw)
	}
	return 0, fmt.Errorf("raven: unknown parameter %s (%v)", spec.Name, spec.Class)
}

// CheckParams verifies that every parameter in specs resolves against
// the tables, so a bad configuration fails before the model is built.
func (ct *ClassTables) CheckParams(specs []raven.ParamSpec, vegClass, landuseClass string) error {
	for _, spec := range specs {
		if _, err := ct.Param(spec, vegClass, landuseClass); err != nil {
			return err
		}
	}
	return nil
}
