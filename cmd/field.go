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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
	"github.com/notargets/gostreaming/utils"
)

type FieldGrid struct {
	XMin, XMax, YMin, YMax float64
	NX, NY                 int
	Output                 string
}

// FieldCmd represents the field command
var FieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Stream function on a Cartesian grid, written as CSV",
	Long: `
Evaluates the steady streaming stream function on linspace(xMin,xMax,nx) x linspace(yMin,yMax,ny)
and writes x,y,psi rows. Points inside the cylinder are zero, points outside the sampled disk NaN.

gostreaming field -W 8 --cauchy 0.05 --zeta 0.2 -o psi.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		fg := &FieldGrid{}
		fg.XMin, _ = cmd.Flags().GetFloat64("xMin")
		fg.XMax, _ = cmd.Flags().GetFloat64("xMax")
		fg.YMin, _ = cmd.Flags().GetFloat64("yMin")
		fg.YMax, _ = cmd.Flags().GetFloat64("yMax")
		fg.NX, _ = cmd.Flags().GetInt("nx")
		fg.NY, _ = cmd.Flags().GetInt("ny")
		fg.Output, _ = cmd.Flags().GetString("output")
		return RunField(fg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(FieldCmd)
	FieldCmd.Flags().Float64("xMin", -3, "minimum x")
	FieldCmd.Flags().Float64("xMax", 3, "maximum x")
	FieldCmd.Flags().Float64("yMin", -3, "minimum y")
	FieldCmd.Flags().Float64("yMax", 3, "maximum y")
	FieldCmd.Flags().Int("nx", 50, "number of x grid lines")
	FieldCmd.Flags().Int("ny", 50, "number of y grid lines")
	FieldCmd.Flags().StringP("output", "o", "", "CSV file, stdout when empty")
}

func newSolution() (s *ElasticStreaming.Solution, err error) {
	sp, err := streamingParameters()
	if err != nil {
		return
	}
	return ElasticStreaming.NewSolutionFromParameters(sp.ToParameters())
}

func RunField(fg *FieldGrid, stdout io.Writer) (err error) {
	var (
		s       *ElasticStreaming.Solution
		X, Y, Z *mat.Dense
		w       = stdout
	)
	if s, err = newSolution(); err != nil {
		return
	}
	if X, Y, Z, err = s.Process(utils.Linspace(fg.XMin, fg.XMax, fg.NX), utils.Linspace(fg.YMin, fg.YMax, fg.NY)); err != nil {
		return
	}
	if len(fg.Output) != 0 {
		var f *os.File
		if f, err = os.Create(fg.Output); err != nil {
			return
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return WriteFieldCSV(w, X, Y, Z)
}

// WriteFieldCSV writes one x,y,psi row per grid point, NaN is written as NaN
func WriteFieldCSV(w io.Writer, X, Y, Z *mat.Dense) (err error) {
	var (
		cw   = csv.NewWriter(w)
		r, c = Z.Dims()
		ff   = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	)
	if err = cw.Write([]string{"x", "y", "psi"}); err != nil {
		return
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = cw.Write([]string{ff(X.At(i, j)), ff(Y.At(i, j)), ff(Z.At(i, j))}); err != nil {
				return fmt.Errorf("writing row %d: %w", i*c+j, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
