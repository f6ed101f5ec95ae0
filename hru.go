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

// HRUType is the discrete type tag of a hydrologic response unit.
// Processes use it to decide whether they apply at all: canopy
// mechanisms, for example, run only on unit types that can host a
// canopy (standard and wetland).
type HRUType int

const (
	HRUStandard HRUType = iota
	HRUWetland
	HRULake
	HRUGlacier
	HRURock
)

var hruTypeNames = map[HRUType]string{
	HRUStandard: "STANDARD",
	HRUWetland:  "WETLAND",
	HRULake:     "LAKE",
	HRUGlacier:  "GLACIER",
	HRURock:     "ROCK",
}

func (t HRUType) String() string {
	if s, ok := hruTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("HRUType(%d)", int(t))
}

// HRUTypeFromString returns the HRU type with the given name, or -1 if
// the name is not recognized.
func HRUTypeFromString(name string) HRUType {
	for t, s := range hruTypeNames {
		if s == name {
			return t
		}
	}
	return HRUType(-1)
}

// SurfaceProps holds land surface properties of an HRU, interpolated
// from its landuse class.
type SurfaceProps struct {
	ForestCoverage  float64 `desc:"Fraction of unit covered by canopy" units:"0..1"`
	ImpermeableFrac float64 `desc:"Fraction of impermeable surface" units:"0..1"`
}

// VegetationProps holds the static properties of the vegetation class
// assigned to an HRU.
type VegetationProps struct {
	MaxCapacity     float64 `desc:"Maximum canopy storage capacity" units:"mm"`
	MaxSnowCapacity float64 `desc:"Maximum canopy snow capacity" units:"mm"`
	TrunkFraction   float64 `desc:"Fraction of precipitation hitting trunks" units:"0..1"`
	StemflowFrac    float64 `desc:"Fraction of throughfall diverted to stemflow" units:"0..1"`
	DripProportion  float64 `desc:"First-order canopy drip coefficient" units:"1/d"`
	Height          float64 `desc:"Canopy height" units:"m"`
	PETCorrection   float64 `desc:"Vegetation PET correction factor" units:"-"`
}

// VegStateProps holds the time-varying vegetation state (leaf-out,
// senescence). Updated outside this package once per step.
type VegStateProps struct {
	Capacity     float64 `desc:"Current canopy storage capacity" units:"mm"`
	SnowCapacity float64 `desc:"Current canopy snow capacity" units:"mm"`
}

// ForcingData holds the meteorological forcings of an HRU for the
// current time step, generated upstream from gauge or gridded inputs.
type ForcingData struct {
	Precip       float64 `desc:"Precipitation rate" units:"mm/d"`
	SnowFrac     float64 `desc:"Fraction of precipitation falling as snow" units:"0..1"`
	TempAve      float64 `desc:"Mean air temperature over step" units:"°C"`
	TempDailyAve float64 `desc:"Mean daily air temperature" units:"°C"`
	TempDailyMin float64 `desc:"Minimum daily air temperature" units:"°C"`
	TempDailyMax float64 `desc:"Maximum daily air temperature" units:"°C"`
	PET          float64 `desc:"Potential evapotranspiration" units:"mm/d"`
	OWPET        float64 `desc:"Open water potential evapotranspiration" units:"mm/d"`
	WindVel      float64 `desc:"Wind velocity at measurement height" units:"m/s"`
	RelHumidity  float64 `desc:"Relative humidity" units:"0..1"`
	AirPres      float64 `desc:"Air pressure" units:"kPa"`
	AirDens      float64 `desc:"Air density" units:"kg/m³"`
	SWRadia      float64 `desc:"Incoming shortwave radiation" units:"MJ/m²/d"`
	SWRadiaNet   float64 `desc:"Net shortwave radiation" units:"MJ/m²/d"`
	LWRadiaNet   float64 `desc:"Net longwave radiation" units:"MJ/m²/d"`
	ETRadia      float64 `desc:"Extraterrestrial radiation" units:"MJ/m²/d"`
	DayLength    float64 `desc:"Day length" units:"fraction of day"`
}

// HydroUnit is the read-only descriptor of a hydrologic response unit:
// a contiguous land area with uniform properties. Processes read it;
// nothing in this package writes it.
type HydroUnit struct {
	Type     HRUType
	Area     float64 `desc:"Unit area" units:"km²"`
	Surface  SurfaceProps
	Veg      VegetationProps
	VegState VegStateProps
	Forcing  ForcingData
}
