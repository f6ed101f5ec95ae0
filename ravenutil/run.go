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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/GaryBoone/GoStats/stats"
	raven "github.com/Ouranosinc/RavenHydroFramework"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultClassTables returns the class tables used when no class file
// is configured: a single broadleaf-like vegetation class and a
// forested landuse class.
func DefaultClassTables() *ClassTables {
	return &ClassTables{
		Vegetation: map[string]VegetationClass{
			"FOREST": {
				MaxCapacity:     5,
				MaxSnowCapacity: 8,
				TrunkFraction:   0.03,
				StemflowFrac:    0.03,
				DripProportion:  0.1,
				Height:          15,
				PETCorrection:   1,
			},
		},
		Landuse: map[string]LanduseClass{
			"FOREST": {
				ForestCoverage:  1,
				ImpermeableFrac: 0,
			},
		},
		Global: map[string]interface{}{
			"SNOW_ROUGHNESS": 0.005,
		},
	}
}

// Simulation is a single-unit model run assembled from configuration.
type Simulation struct {
	Model *raven.Model
	HRU   *raven.HydroUnit
	State []float64

	steps     int
	petMethod raven.PETType
}

// NewSimulation builds the model described by cfg: it resolves the
// unit's classes against the class tables, validates every enabled
// process's required parameters and compartments through the
// participation queries, and only then constructs the processes.
func NewSimulation(cfg *viper.Viper) (*Simulation, error) {
	timestep := cfg.GetFloat64("Timestep")
	duration := cfg.GetFloat64("Duration")
	if timestep <= 0 || duration < timestep {
		return nil, fmt.Errorf("raven: need 0 < Timestep (%g) <= Duration (%g)", timestep, duration)
	}

	ct := DefaultClassTables()
	if path := cfg.GetString("ClassFile"); path != "" {
		var err error
		if ct, err = LoadClassTables(path); err != nil {
			return nil, err
		}
	}

	hru, err := buildHRU(cfg, ct)
	if err != nil {
		return nil, err
	}

	petMethod := raven.PETTypeFromString(cfg.GetString("PETMethod"))
	if petMethod < 0 {
		return nil, fmt.Errorf("raven: unknown PETMethod %q", cfg.GetString("PETMethod"))
	}

	m := raven.NewModel(raven.Options{
		Timestep:              timestep,
		SuppressCompetitiveET: cfg.GetBool("SuppressCompetitiveET"),
		PETMethod:             petMethod,
		SnowRoughness:         cfg.GetFloat64("SnowRoughness"),
	})

	vegClass := className(cfg, "HRU.VegetationClass")
	luClass := className(cfg, "HRU.LanduseClass")
	check := func(specs []raven.ParamSpec, err error) error {
		if err != nil {
			return err
		}
		return ct.CheckParams(specs, vegClass, luClass)
	}

	// First pass: register every compartment the enabled processes
	// participate in, so offsets are fixed before construction.
	evapName := cfg.GetString("Processes.CanopyEvaporation")
	sublimName := cfg.GetString("Processes.CanopySublimation")
	dripName := cfg.GetString("Processes.CanopyDrip")

	var evapType raven.CanopyEvapType
	if evapName != "" {
		if evapType = raven.CanopyEvapTypeFromString(evapName); evapType < 0 {
			return nil, fmt.Errorf("raven: unknown canopy evaporation algorithm %q", evapName)
		}
		if err := check(raven.CanopyEvapParams(evapType)); err != nil {
			return nil, err
		}
		m.AddStateVars(raven.CanopyEvapStateVars(evapType))
	}
	var sublimType raven.SublimationType
	if sublimName != "" {
		if sublimType = raven.SublimationTypeFromString(sublimName); sublimType < 0 {
			return nil, fmt.Errorf("raven: unknown sublimation algorithm %q", sublimName)
		}
		if err := check(raven.CanopySublimationParams(sublimType)); err != nil {
			return nil, err
		}
		m.AddStateVars(raven.CanopySublimationStateVars(sublimType))
	}
	var dripType raven.CanopyDripType
	var dripTo raven.SVType
	if dripName != "" {
		if dripType = raven.CanopyDripTypeFromString(dripName); dripType < 0 {
			return nil, fmt.Errorf("raven: unknown canopy drip algorithm %q", dripName)
		}
		if err := check(raven.CanopyDripParams(dripType)); err != nil {
			return nil, err
		}
		m.AddStateVars(raven.CanopyDripStateVars(dripType))
		dripTo = raven.SVTypeFromString(cfg.GetString("Processes.CanopyDripTo"))
		if dripTo == raven.SVUnknown {
			return nil, fmt.Errorf("raven: unknown drip destination %q", cfg.GetString("Processes.CanopyDripTo"))
		}
		m.Add(dripTo, raven.LayerNone)
	}
	// precipitation falling past the canopy always needs somewhere to
	// land
	m.Add(raven.Ponded, raven.LayerNone)

	// Second pass: construct the processes against the fixed offsets.
	if evapName != "" {
		m.AddProcess(raven.NewCanopyEvap(evapType, &m.StateVars))
	}
	if sublimName != "" {
		m.AddProcess(raven.NewCanopySublimation(sublimType, &m.StateVars))
	}
	if dripName != "" {
		drip, err := raven.NewCanopyDrip(dripType, m.Index(dripTo), &m.StateVars)
		if err != nil {
			return nil, err
		}
		m.AddProcess(drip)
	}

	if err := m.Initialize(); err != nil {
		return nil, err
	}

	state := make([]float64, m.Len())
	if i := m.Index(raven.Canopy); i != raven.IndexNotFound {
		state[i] = cfg.GetFloat64("InitialStorage.Canopy")
	}
	if i := m.Index(raven.CanopySnow); i != raven.IndexNotFound {
		state[i] = cfg.GetFloat64("InitialStorage.CanopySnow")
	}

	return &Simulation{
		Model:     m,
		HRU:       hru,
		State:     state,
		steps:     int(duration/timestep + 0.5),
		petMethod: petMethod,
	}, nil
}

func className(cfg *viper.Viper, key string) string {
	if name := cfg.GetString(key); name != "" {
		return name
	}
	return "FOREST"
}

// buildHRU assembles the unit descriptor from configuration and class
// tables.
func buildHRU(cfg *viper.Viper, ct *ClassTables) (*raven.HydroUnit, error) {
	typ := raven.HRUTypeFromString(cfg.GetString("HRU.Type"))
	if typ < 0 {
		return nil, fmt.Errorf("raven: unknown HRU type %q", cfg.GetString("HRU.Type"))
	}

	veg, ok := ct.Vegetation[className(cfg, "HRU.VegetationClass")]
	if !ok {
		return nil, fmt.Errorf("raven: undefined vegetation class %q", className(cfg, "HRU.VegetationClass"))
	}
	lu, ok := ct.Landuse[className(cfg, "HRU.LanduseClass")]
	if !ok {
		return nil, fmt.Errorf("raven: undefined landuse class %q", className(cfg, "HRU.LanduseClass"))
	}

	return &raven.HydroUnit{
		Type: typ,
		Area: cfg.GetFloat64("HRU.Area"),
		Surface: raven.SurfaceProps{
			ForestCoverage:  lu.ForestCoverage,
			ImpermeableFrac: lu.ImpermeableFrac,
		},
		Veg: raven.VegetationProps{
			MaxCapacity:     veg.MaxCapacity,
			MaxSnowCapacity: veg.MaxSnowCapacity,
			TrunkFraction:   veg.TrunkFraction,
			StemflowFrac:    veg.StemflowFrac,
			DripProportion:  veg.DripProportion,
			Height:          veg.Height,
			PETCorrection:   veg.PETCorrection,
		},
		VegState: raven.VegStateProps{
			Capacity:     veg.MaxCapacity,
			SnowCapacity: veg.MaxSnowCapacity,
		},
		Forcing: raven.ForcingData{
			Precip:       cfg.GetFloat64("Forcing.Precip"),
			SnowFrac:     cfg.GetFloat64("Forcing.SnowFrac"),
			PET:          cfg.GetFloat64("Forcing.PET"),
			TempAve:      cfg.GetFloat64("Forcing.TempAve"),
			TempDailyAve: cfg.GetFloat64("Forcing.TempAve"),
		},
	}, nil
}

// applyPrecip partitions this step's precipitation between canopy
// interception and throughfall to ponded water. Snow interception
// goes to the canopy snow compartment when one exists, otherwise it
// joins the throughfall.
func (s *Simulation) applyPrecip(dt float64) {
	m := s.Model
	p := s.HRU.Forcing.Precip * dt // mm
	if p <= 0 {
		return
	}
	fc := s.HRU.Surface.ForestCoverage
	snow := p * s.HRU.Forcing.SnowFrac
	rain := p - snow

	through := rain * (1 - fc)
	if i := m.Index(raven.Canopy); i != raven.IndexNotFound {
		s.State[i] += rain * fc
	} else {
		through += rain * fc
	}
	throughSnow := snow * (1 - fc)
	if i := m.Index(raven.CanopySnow); i != raven.IndexNotFound {
		s.State[i] += snow * fc
	} else {
		throughSnow += snow * fc
	}
	s.State[m.Index(raven.Ponded)] += through + throughSnow
}

// Step advances the simulation by one time step.
func (s *Simulation) Step(t raven.TimeStep) error {
	if s.petMethod != raven.PETData {
		pet, err := raven.EstimatePET(&s.HRU.Forcing, s.HRU, s.petMethod, &s.Model.Options)
		if err != nil {
			return err
		}
		s.HRU.Forcing.PET = pet
	}
	s.applyPrecip(s.Model.Options.Timestep)
	return s.Model.Step(s.State, s.HRU, t)
}

// Run steps the simulation over its full duration, writing per-step
// storages to outputFile (CSV) and logging a summary of the actual
// evapotranspiration series.
func (s *Simulation) Run(outputFile string) error {
	m := s.Model
	dt := m.Options.Timestep

	var w *csv.Writer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("raven: problem creating output file: %v", err)
		}
		defer f.Close()
		w = csv.NewWriter(f)
		defer w.Flush()

		header := []string{"step", "time_d"}
		for i := 0; i < m.Len(); i++ {
			header = append(header, m.Name(i))
		}
		if err := w.Write(header); err != nil {
			return err
		}
	}

	logger.WithFields(logrus.Fields{
		"steps":    s.steps,
		"timestep": dt,
		"storage":  m.Storage(s.State),
	}).Info("starting simulation")

	var aet stats.Stats
	iAET := m.Index(raven.AET)
	for step := 0; step < s.steps; step++ {
		t := raven.TimeStep{
			ModelTime: float64(step) * dt,
			Step:      step,
			DayOfYear: int(float64(step)*dt) % 365,
		}
		if err := s.Step(t); err != nil {
			return err
		}
		if iAET != raven.IndexNotFound {
			aet.Update(s.State[iAET] / dt)
		}
		if w != nil {
			row := []string{strconv.Itoa(step), fmtFloat(t.ModelTime + dt)}
			for i := 0; i < m.Len(); i++ {
				row = append(row, fmtFloat(s.State[i]))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	fields := logrus.Fields{
		"storage": m.Storage(s.State),
	}
	if aet.Count() > 0 {
		fields["aet_mean"] = aet.Mean()
		fields["aet_max"] = aet.Max()
		if aet.Count() > 1 {
			fields["aet_sd"] = aet.SampleStandardDeviation()
		}
	}
	logger.WithFields(fields).Info("simulation finished")
	return nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
