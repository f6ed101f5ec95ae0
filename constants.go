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

import "math"

// Physical constants.
const (
	densityWater = 1000.0   // kg/m³
	lhVapor      = 2.501    // latent heat of vaporization at 0°C [MJ/kg]
	lhSublim     = 2.835    // latent heat of sublimation [MJ/kg]
	sphAir       = 1.013e-3 // specific heat of moist air [MJ/kg/K]
	airDryRatio  = 0.622    // molecular weight ratio of water vapor to dry air
	vonKarman    = 0.42
	zeroCelsius  = 273.16 // K
)

// Unit conversions.
const (
	mmPerMeter = 1000.0
	mmPerInch  = 25.4
	mbPerKPa   = 10.0
	secPerDay  = 86400.0
)

// saturatedVaporPressure returns the saturation vapor pressure [kPa]
// at air temperature T [°C] (Tetens equation).
func saturatedVaporPressure(T float64) float64 {
	return 0.6108 * math.Exp(17.27*T/(T+237.3))
}

// satVapSlope returns the slope of the saturation vapor pressure curve
// de*/dT [kPa/K] at temperature T [°C], given the saturation vapor
// pressure at T.
func satVapSlope(T, satVap float64) float64 {
	return 4098.0 * satVap / ((T + 237.3) * (T + 237.3))
}

// latentHeatVaporization returns the latent heat of vaporization
// [MJ/kg] at temperature T [°C].
func latentHeatVaporization(T float64) float64 {
	return lhVapor - 0.002361*T
}

// psychrometricConstant returns the psychrometric "constant" [kPa/K]
// for air pressure airPres [kPa] and latent heat lh [MJ/kg].
func psychrometricConstant(airPres, lh float64) float64 {
	return sphAir * airPres / (airDryRatio * lh)
}
