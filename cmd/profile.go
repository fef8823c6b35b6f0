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
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/notargets/gostreaming/utils"
)

// ProfileCmd represents the profile command
var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Radial decay functions g, h and g + kappa h",
	Long: `
Tabulates the rigid body decay g, the elastic decay h and the combined profile on
linspace(rMin,rMax,n), then reports the radius where |g + kappa h| is smallest.

gostreaming profile --rMin 1.1 --rMax 2 -n 501`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rMin, _ := cmd.Flags().GetFloat64("rMin")
		rMax, _ := cmd.Flags().GetFloat64("rMax")
		n, _ := cmd.Flags().GetInt("n")
		quiet, _ := cmd.Flags().GetBool("quiet")
		return RunProfile(rMin, rMax, n, quiet, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(ProfileCmd)
	ProfileCmd.Flags().Float64("rMin", 1.1, "first radius")
	ProfileCmd.Flags().Float64("rMax", 2.0, "last radius")
	ProfileCmd.Flags().IntP("n", "n", 501, "number of radii")
	ProfileCmd.Flags().BoolP("quiet", "q", false, "only report the radius of minimum |g + kappa h|")
}

func RunProfile(rMin, rMax float64, n int, quiet bool, w io.Writer) (err error) {
	if n < 1 {
		return fmt.Errorf("need at least one radius, have %d", n)
	}
	s, err := newSolution()
	if err != nil {
		return
	}
	var (
		r    = utils.Linspace(rMin, rMax, n)
		g, h []float64
		best = 0
	)
	if g, err = s.RigidBodyPsiRadialDecay(r); err != nil {
		return
	}
	if h, err = s.ElasticityEffectPsiRadialDecay(r); err != nil {
		return
	}
	kappa := s.Kappa()
	if !quiet {
		fmt.Fprintf(w, "%12s %14s %14s %14s\n", "r", "g", "h", "g+kappa*h")
	}
	for i := range r {
		f := g[i] + kappa*h[i]
		if math.Abs(f) < math.Abs(g[best]+kappa*h[best]) {
			best = i
		}
		if !quiet {
			fmt.Fprintf(w, "%12.6f %14.8g %14.8g %14.8g\n", r[i], g[i], h[i], f)
		}
	}
	fmt.Fprintf(w, "%8.5f\t= radius of minimum |g + kappa h|\n", r[best])
	return
}
