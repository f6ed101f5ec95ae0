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

// Package ravenutil holds the configuration and command-line surface
// of the raven command.
package ravenutil

import (
	"fmt"

	raven "github.com/Ouranosinc/RavenHydroFramework"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Options are the configuration options available to the raven
	// command.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path of the CSV file the per-step storages
              are written to. An empty path disables output.`,
			shorthand:  "o",
			defaultVal: "storages.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ClassFile",
			usage: `
              ClassFile is the path of the TOML file holding the vegetation
              and landuse class property tables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Duration",
			usage: `
              Duration is the length of the simulation in days.`,
			defaultVal: 30.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Timestep",
			usage: `
              Timestep is the simulation step length in days.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "HRU.Type",
			usage: `
              HRU.Type is the hydrologic response unit type: STANDARD,
              WETLAND, LAKE, GLACIER or ROCK.`,
			defaultVal: "STANDARD",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "HRU.Area",
			usage: `
              HRU.Area is the unit area in km².`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "HRU.VegetationClass",
			usage: `
              HRU.VegetationClass names the vegetation class (from ClassFile)
              assigned to the unit.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "HRU.LanduseClass",
			usage: `
              HRU.LanduseClass names the landuse class (from ClassFile)
              assigned to the unit.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Processes.CanopyEvaporation",
			usage: `
              Processes.CanopyEvaporation selects the canopy evaporation
              algorithm (CANEVP_RUTTER, CANEVP_MAXIMUM, CANEVP_ALL); empty
              disables the process.`,
			defaultVal: "CANEVP_RUTTER",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Processes.CanopySublimation",
			usage: `
              Processes.CanopySublimation selects the canopy snow sublimation
              algorithm (SUBLIM_MAXIMUM, SUBLIM_ALL, SUBLIM_SVERDRUP,
              SUBLIM_KUZMIN); empty disables the process.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Processes.CanopyDrip",
			usage: `
              Processes.CanopyDrip selects the canopy drip algorithm
              (CANDRIP_RUTTER, CANDRIP_SLOWDRAIN); empty disables the
              process.`,
			defaultVal: "CANDRIP_RUTTER",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Processes.CanopyDripTo",
			usage: `
              Processes.CanopyDripTo names the compartment canopy drip
              routes to (typically PONDED_WATER).`,
			defaultVal: "PONDED_WATER",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "PETMethod",
			usage: `
              PETMethod selects the potential evapotranspiration formula
              (PET_DATA, PET_CONSTANT, PET_HAMON, ...). PET_DATA uses the
              Forcing.PET value directly.`,
			defaultVal: "PET_DATA",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "SuppressCompetitiveET",
			usage: `
              SuppressCompetitiveET disables the reduction of available PET
              by the actual ET already granted within a step.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "SnowRoughness",
			usage: `
              SnowRoughness is the snow surface roughness length [m] used
              by wind-driven sublimation formulas.`,
			defaultVal: 0.005,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Forcing.Precip",
			usage: `
              Forcing.Precip is the precipitation rate [mm/d] applied at
              every step.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Forcing.SnowFrac",
			usage: `
              Forcing.SnowFrac is the fraction of precipitation falling as
              snow.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Forcing.PET",
			usage: `
              Forcing.PET is the potential evapotranspiration rate [mm/d]
              used when PETMethod is PET_DATA.`,
			defaultVal: 3.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Forcing.TempAve",
			usage: `
              Forcing.TempAve is the mean air temperature [°C].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "InitialStorage.Canopy",
			usage: `
              InitialStorage.Canopy is the initial canopy water storage [mm].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "InitialStorage.CanopySnow",
			usage: `
              InitialStorage.CanopySnow is the initial canopy snow storage
              [mm].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("RAVEN")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("raven: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "raven",
	Short: "A hydrologic mass-transfer process model.",
	Long: `Raven simulates the vertical movement of water through the storage
compartments of a hydrologic response unit: canopy interception,
evaporation, sublimation and drip.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'RAVEN_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Raven.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Raven v%s\n", raven.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation.",
	Long: `run builds the model described by the configuration and steps it
over the configured duration, writing per-step storages to the output
file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := NewSimulation(Cfg)
		if err != nil {
			return err
		}
		return sim.Run(Cfg.GetString("OutputFile"))
	},
	DisableAutoGenTag: true,
}
