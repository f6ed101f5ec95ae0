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

// PETType selects the method used to estimate potential
// evapotranspiration from forcing data.
type PETType int

const (
	PETConstant PETType = iota // fixed 3 mm/d, for testing
	PETData                    // read directly from forcing input
	PETHamon
	PETHargreaves1985
	PETMakkink
	PETTurc
	PETPriestleyTaylor
	PETPenmanSimple33
	PETPenmanSimple39
	PETOudin
	PETGrangerGray
	PETJensenHaise         // not implemented
	PETShuttleworthWallace // not implemented
)

var petTypeNames = map[PETType]string{
	PETConstant:            "PET_CONSTANT",
	PETData:                "PET_DATA",
	PETHamon:               "PET_HAMON",
	PETHargreaves1985:      "PET_HARGREAVES_1985",
	PETMakkink:             "PET_MAKKINK_1957",
	PETTurc:                "PET_TURC_1961",
	PETPriestleyTaylor:     "PET_PRIESTLEY_TAYLOR",
	PETPenmanSimple33:      "PET_PENMAN_SIMPLE33",
	PETPenmanSimple39:      "PET_PENMAN_SIMPLE39",
	PETOudin:               "PET_OUDIN",
	PETGrangerGray:         "PET_GRANGERGRAY",
	PETJensenHaise:         "PET_JENSEN_HAISE",
	PETShuttleworthWallace: "PET_SHUTTLEWORTH_WALLACE",
}

func (t PETType) String() string {
	if s, ok := petTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("PETType(%d)", int(t))
}

// PETTypeFromString returns the PET method with the given name, or -1
// if the name is not recognized.
func PETTypeFromString(name string) PETType {
	for t, s := range petTypeNames {
		if s == name {
			return t
		}
	}
	return PETType(-1)
}

// priestleyTaylorCoeff is the standard Priestley-Taylor coefficient.
const priestleyTaylorCoeff = 1.28

// EstimatePET returns the potential evapotranspiration rate [mm/d]
// for the given forcing and unit using the selected method, corrected
// by the vegetation PET correction factor (unset, i.e. zero, means no
// correction). Methods whose physics are not coded return a
// *StubError; an unrecognized method is a *ConfigError.
func EstimatePET(f *ForcingData, hru *HydroUnit, method PETType, opts *Options) (float64, error) {
	var pet float64

	switch method {
	case PETConstant:
		pet = 3.0
	case PETData:
		pet = f.PET
	case PETHamon:
		pet = hamon1961Evap(f)
	case PETHargreaves1985:
		pet = hargreaves1985Evap(f)
	case PETMakkink:
		pet = makkink1957Evap(f)
	case PETTurc:
		pet = turcEvap(f)
	case PETPriestleyTaylor:
		pet = priestleyTaylorEvap(f, priestleyTaylorCoeff)
	case PETPenmanSimple33:
		// simplified Penman, eqn 33 of Valiantzas (2006)
		pet = 0.047*f.SWRadia*math.Sqrt(f.TempAve+9.5) -
			2.4*math.Pow(f.SWRadia/f.ETRadia, 2.0) +
			0.09*(f.TempAve+20)*(1-f.RelHumidity)
		pet = max(pet, 0.0)
	case PETPenmanSimple39:
		// simplified Penman, eqn 39 of Valiantzas (2006)
		pet = 0.038*f.SWRadia*math.Sqrt(f.TempAve+9.5) -
			2.4*math.Pow(f.SWRadia/f.ETRadia, 2.0) +
			0.075*(f.TempAve+20)*(1-f.RelHumidity)
		pet = max(pet, 0.0)
	case PETOudin:
		pet = max(f.ETRadia/densityWater/lhVapor*mmPerMeter*(f.TempDailyAve+5.0)/100.0, 0.0)
	case PETGrangerGray:
		pet = grangerGrayEvap(f, hru)
	case PETJensenHaise:
		return 0, &StubError{Process: "EstimatePET", Feature: "PET_JENSEN_HAISE"}
	case PETShuttleworthWallace:
		return 0, &StubError{Process: "EstimatePET", Feature: "PET_SHUTTLEWORTH_WALLACE"}
	default:
		return 0, configErrorf("EstimatePET", "invalid evaporation type %v", method)
	}

	if pet < 0 || math.IsNaN(pet) {
		return 0, fmt.Errorf("raven: EstimatePET: invalid PET (%g mm/d) calculated with %v", pet, method)
	}

	vegCorr := hru.Veg.PETCorrection
	if vegCorr == 0 {
		vegCorr = 1.0
	}
	return pet * vegCorr, nil
}

// hamon1961Evap returns PET [mm/d] from the Hamon (1961) model as
// outlined in the PRMS manual.
func hamon1961Evap(f *ForcingData) float64 {
	satVap := saturatedVaporPressure(f.TempDailyAve) // kPa
	// absolute humidity, g/m³
	absHum := 216.7 * (satVap * mbPerKPa) / (f.TempDailyAve + zeroCelsius)
	return 0.0055 * 4.0 * absHum * f.DayLength * f.DayLength * mmPerInch
}

// hargreaves1985Evap returns PET [mm/d] from the Hargreaves (1985)
// equation (Hargreaves & Allen 2003).
func hargreaves1985Evap(f *ForcingData) float64 {
	const hargreavesConst = 0.0023
	ra := f.ETRadia / (lhVapor * densityWater / mmPerMeter) // [MJ/m²/d] -> [mm/d]
	delT := max(f.TempDailyMax-f.TempDailyMin, 0.0)
	return max(0.0, hargreavesConst*ra*math.Sqrt(delT)*(f.TempDailyAve+17.8))
}

// makkink1957Evap returns PET [mm/d] from the Makkink (1957) method as
// described in Lu et al. (2005).
func makkink1957Evap(f *ForcingData) float64 {
	satVap := saturatedVaporPressure(f.TempAve)
	dedT := satVapSlope(f.TempAve, satVap)
	lh := latentHeatVaporization(f.TempAve)
	gamma := psychrometricConstant(f.AirPres, lh)

	pet := 0.61*(dedT/(dedT+gamma))*f.SWRadia*23.8846/58.5 - 0.12
	return max(0.0, pet)
}

// turcEvap returns PET [mm/d] from the Turc (1961) method as described
// in Lu et al. (2005).
func turcEvap(f *ForcingData) float64 {
	t := max(0.0, f.TempDailyAve)
	evp := 0.013 * t / (t + 15) * (f.SWRadia*23.8846 + 50)
	if f.RelHumidity < 0.5 {
		evp *= 1 + (50-f.RelHumidity*100)/70
	}
	return max(0.0, evp)
}

// priestleyTaylorEvap returns PET [mm/d] from the Priestley-Taylor
// equation.
func priestleyTaylorEvap(f *ForcingData, ptCoeff float64) float64 {
	satVap := saturatedVaporPressure(f.TempAve)
	dedT := satVapSlope(f.TempAve, satVap)
	lh := latentHeatVaporization(f.TempAve)
	gamma := psychrometricConstant(f.AirPres, lh)

	return ptCoeff * (dedT / (dedT + gamma)) *
		max(f.SWRadiaNet+f.LWRadiaNet, 0.0) / lh / densityWater * mmPerMeter
}

// PenmanMonteithEvap returns the evaporation rate [mm/d] from the
// Penman-Monteith equation, an energy-balance approach (Dingman eqn
// 7-56), given atmospheric and canopy conductances [mm/s]. Zero canopy
// conductance means no ET.
func PenmanMonteithEvap(f *ForcingData, atmosCond, canopyCond float64) float64 {
	if canopyCond == 0 {
		return 0.0
	}
	satVap := saturatedVaporPressure(f.TempAve)
	dedT := satVapSlope(f.TempAve, satVap)
	lh := latentHeatVaporization(f.TempAve)
	gamma := psychrometricConstant(f.AirPres, lh)
	vaporDef := satVap * (1.0 - f.RelHumidity)

	numer := dedT * max(f.SWRadiaNet+f.LWRadiaNet, 0.0)
	numer += f.AirDens * sphAir * vaporDef * (atmosCond * secPerDay / mmPerMeter)
	denom := (dedT + gamma*(1.0+atmosCond/canopyCond)) * lh * densityWater

	return numer / denom * mmPerMeter
}

// grangerGrayEvap returns PET [mm/d] from the Granger & Gray (1989)
// method, ported from classEvap in CRHM.
func grangerGrayEvap(f *ForcingData, hru *HydroUnit) float64 {
	const fracToGround = 0.1
	rnet := (f.SWRadiaNet + f.LWRadiaNet) * (1.0 - fracToGround) // MJ/m²/d
	if rnet <= 0 {
		return 0.0
	}

	satVap := saturatedVaporPressure(f.TempAve)
	dedT := satVapSlope(f.TempAve, satVap)
	lh := latentHeatVaporization(f.TempAve)
	gamma := psychrometricConstant(f.AirPres, lh)

	eaMod := DryingPower(f.WindVel, hru.Veg.Height) * (satVap * (1.0 - f.RelHumidity))

	var d float64 // relative drying power
	if eaMod > 0 {
		d = min(1.0/(1.0+rnet/lhVapor/densityWater/eaMod), 1.0)
	}
	g := 1.0/(0.793+0.2*math.Exp(4.902*d)) + 0.006*d // relative evaporation

	pet := (dedT*rnet + gamma*eaMod) / (dedT + gamma/g) / lhVapor / densityWater
	return max(pet, 0.0)
}

// DryingPower returns the drying power modifier f(u) [mm/d/kPa] for
// wind through a canopy, from Granger & Gray (1989).
func DryingPower(windVel, vegHeight float64) float64 {
	z0 := vegHeight * 100.0 / 7.6 // cm (Brutsaert, 1982)
	return (8.19 + 0.22*z0) + (1.16+0.08*z0)*windVel
}

// AdjustWindVel returns the ratio converting a wind velocity measured
// at a weather station to the velocity at the vegetation reference
// height, following Brutsaert (1982) eqns 7-39, 7-41 and 4-3. refHeight
// and zeroPlane describe the destination profile; fetch, measurementHt
// and roughness describe the station.
func AdjustWindVel(refHeight, zeroPlane, vegRoughness, fetch, measurementHt, roughness float64) float64 {
	if measurementHt <= 1.0 {
		return 1.0
	}
	// height of the internal boundary layer, m
	hibl := 0.334 * math.Pow(fetch, 0.875) * math.Pow(roughness, 0.125)
	tmp := math.Log(hibl / roughness)
	tmp *= math.Log((refHeight - zeroPlane) / vegRoughness)
	tmp /= math.Log(hibl/vegRoughness) * math.Log(measurementHt/roughness)
	return tmp
}
