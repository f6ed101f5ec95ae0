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
	"errors"
	"math"
	"testing"
)

// summerForcing is a plausible mid-latitude summer day.
func summerForcing() *ForcingData {
	return &ForcingData{
		TempAve:      20,
		TempDailyAve: 20,
		TempDailyMin: 12,
		TempDailyMax: 28,
		RelHumidity:  0.6,
		AirPres:      101.3,
		AirDens:      1.2,
		WindVel:      2,
		SWRadia:      25,
		SWRadiaNet:   20,
		LWRadiaNet:   -4,
		ETRadia:      40,
		DayLength:    0.6,
	}
}

func TestEstimatePETConstant(t *testing.T) {
	pet, err := EstimatePET(summerForcing(), testHRU(), PETConstant, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if different(pet, 3, testTolerance) {
		t.Errorf("PET = %g mm/d, want 3", pet)
	}
}

func TestEstimatePETData(t *testing.T) {
	f := summerForcing()
	f.PET = 4.2
	pet, err := EstimatePET(f, testHRU(), PETData, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if different(pet, 4.2, testTolerance) {
		t.Errorf("PET = %g mm/d, want 4.2", pet)
	}
}

// Hamon (1961): hand evaluation of
// 0.0055·4·(216.7·es[mb]/(T+273.16))·L²·25.4 at T = 20°C, L = 0.6.
func TestEstimatePETHamon(t *testing.T) {
	f := summerForcing()
	es := 0.6108 * math.Exp(17.27*20.0/(20.0+237.3)) // kPa
	absHum := 216.7 * es * 10 / (20 + 273.16)
	want := 0.0055 * 4 * absHum * 0.6 * 0.6 * 25.4

	pet, err := EstimatePET(f, testHRU(), PETHamon, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if different(pet, want, testTolerance) {
		t.Errorf("PET = %g mm/d, want %g", pet, want)
	}
	if pet < 1 || pet > 10 {
		t.Errorf("PET = %g mm/d is implausible for a summer day", pet)
	}
}

// Hargreaves (1985): 0.0023·Ra[mm/d]·sqrt(Tmax−Tmin)·(Tave+17.8).
func TestEstimatePETHargreaves1985(t *testing.T) {
	f := summerForcing()
	ra := 40.0 / (2.501 * 1000.0 / 1000.0)
	want := 0.0023 * ra * math.Sqrt(28.0-12.0) * (20 + 17.8)

	pet, err := EstimatePET(f, testHRU(), PETHargreaves1985, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if different(pet, want, testTolerance) {
		t.Errorf("PET = %g mm/d, want %g", pet, want)
	}
}

// Turc (1961): 0.013·T/(T+15)·(Rs[cal/cm²/d]+50), humid case.
func TestEstimatePETTurc(t *testing.T) {
	f := summerForcing()
	want := 0.013 * 20.0 / (20.0 + 15.0) * (25.0*23.8846 + 50.0)

	pet, err := EstimatePET(f, testHRU(), PETTurc, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if different(pet, want, testTolerance) {
		t.Errorf("PET = %g mm/d, want %g", pet, want)
	}

	// the dry-air correction kicks in below 50% relative humidity
	f.RelHumidity = 0.4
	dry, err := EstimatePET(f, testHRU(), PETTurc, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if dry <= pet {
		t.Errorf("dry-air PET %g should exceed humid PET %g", dry, pet)
	}
}

// Oudin (2005): Ra/(λρ)·(T+5)/100, zero below −5°C.
func TestEstimatePETOudin(t *testing.T) {
	f := summerForcing()
	want := 40.0 / 1000.0 / 2.501 * 1000.0 * (20.0 + 5.0) / 100.0

	pet, err := EstimatePET(f, testHRU(), PETOudin, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if different(pet, want, testTolerance) {
		t.Errorf("PET = %g mm/d, want %g", pet, want)
	}

	f.TempDailyAve = -10
	pet, err = EstimatePET(f, testHRU(), PETOudin, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if pet != 0 {
		t.Errorf("cold PET = %g mm/d, want 0", pet)
	}
}

// The remaining coded methods should all land in a physically
// plausible range for a summer day.
func TestEstimatePETPlausible(t *testing.T) {
	methods := []PETType{
		PETMakkink, PETPriestleyTaylor,
		PETPenmanSimple33, PETPenmanSimple39,
	}
	hru := testHRU()
	for _, method := range methods {
		pet, err := EstimatePET(summerForcing(), hru, method, testOptions())
		if err != nil {
			t.Fatalf("%v: %v", method, err)
		}
		if pet < 0.5 || pet > 15 {
			t.Errorf("%v: PET = %g mm/d is implausible for a summer day", method, pet)
		}
	}
}

// Granger & Gray (1989) is net-radiation gated: no PET without a
// positive radiation balance.
func TestEstimatePETGrangerGray(t *testing.T) {
	hru := testHRU()
	hru.Veg.Height = 10

	pet, err := EstimatePET(summerForcing(), hru, PETGrangerGray, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if pet <= 0 {
		t.Errorf("PET = %g mm/d under positive net radiation, want > 0", pet)
	}

	f := summerForcing()
	f.SWRadiaNet = 1
	f.LWRadiaNet = -4
	pet, err = EstimatePET(f, hru, PETGrangerGray, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if pet != 0 {
		t.Errorf("PET = %g mm/d under negative net radiation, want 0", pet)
	}
}

// The vegetation correction factor scales the result; zero means
// unset.
func TestEstimatePETVegCorrection(t *testing.T) {
	hru := testHRU()
	hru.Veg.PETCorrection = 0.8
	pet, err := EstimatePET(summerForcing(), hru, PETConstant, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if different(pet, 3*0.8, testTolerance) {
		t.Errorf("PET = %g mm/d, want 2.4", pet)
	}

	hru.Veg.PETCorrection = 0
	pet, err = EstimatePET(summerForcing(), hru, PETConstant, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if different(pet, 3, testTolerance) {
		t.Errorf("PET = %g mm/d with unset correction, want 3", pet)
	}
}

func TestEstimatePETStubs(t *testing.T) {
	for _, method := range []PETType{PETJensenHaise, PETShuttleworthWallace} {
		_, err := EstimatePET(summerForcing(), testHRU(), method, testOptions())
		var stub *StubError
		if !errors.As(err, &stub) {
			t.Errorf("%v: error = %v, want *StubError", method, err)
		}
	}

	_, err := EstimatePET(summerForcing(), testHRU(), PETType(99), testOptions())
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("unknown method: error = %v, want *ConfigError", err)
	}
}

func TestPETTypeNames(t *testing.T) {
	for _, method := range []PETType{PETConstant, PETHamon, PETOudin, PETGrangerGray} {
		if got := PETTypeFromString(method.String()); got != method {
			t.Errorf("round trip %v -> %q -> %v", method, method.String(), got)
		}
	}
}
