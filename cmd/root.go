/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gostreaming/InputParameters"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gostreaming",
	Short: "Steady streaming about a cylinder oscillating in a viscoelastic fluid",
	Long: `
Evaluates the asymptotic steady streaming stream function about a unit cylinder oscillating in a
viscoelastic fluid, parameterized by the Womersley number, the Cauchy number and the pinned zone
radius ratio.

gostreaming layer -W 8 --cauchy 0.05 --zeta 0.2`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		if viper.GetBool("profile") {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gostreaming.yaml)")
	pf.StringP("inputParametersFile", "I", "", "YAML or INI (.ini) file with Womersley, Cauchy, PinnedZoneRadius and Epsilon")
	pf.Float64P("womersley", "W", 8, "Womersley number of the oscillation")
	pf.Float64P("cauchy", "c", 0.05, "Cauchy (elasticity) number")
	pf.Float64P("zeta", "z", 0.2, "pinned zone radius ratio")
	pf.Float64P("epsilon", "e", 0.05, "oscillation amplitude")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.Bool("profile", false, "write a CPU profile to the working directory")
	if err := viper.BindPFlags(pf); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gostreaming")
	}
	viper.SetEnvPrefix("streaming")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file: ", viper.ConfigFileUsed())
	}
}

// streamingParameters come from the input file when one is named, from flags, environment and config otherwise
func streamingParameters() (sp *InputParameters.StreamingParameters, err error) {
	var (
		data []byte
		file = viper.GetString("inputParametersFile")
	)
	sp = &InputParameters.StreamingParameters{}
	if len(file) == 0 {
		sp.Womersley = viper.GetFloat64("womersley")
		sp.Cauchy = viper.GetFloat64("cauchy")
		sp.PinnedZoneRadius = viper.GetFloat64("zeta")
		sp.Epsilon = viper.GetFloat64("epsilon")
		return
	}
	if data, err = os.ReadFile(file); err != nil {
		return
	}
	if strings.EqualFold(filepath.Ext(file), ".ini") {
		err = sp.ParseINI(data)
	} else {
		err = sp.Parse(data)
	}
	return
}
