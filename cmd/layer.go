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

	"github.com/spf13/cobra"
)

// LayerCmd represents the layer command
var LayerCmd = &cobra.Command{
	Use:   "layer",
	Short: "Thickness of the DC streaming layer",
	Long: `
Finds the radius in [1.1, 3] where the radial decay of the streaming stream function changes sign,
or reports a diverging layer.

gostreaming layer -W 8 --cauchy 0.05 --zeta 0.2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLayer(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(LayerCmd)
}

func RunLayer(w io.Writer) (err error) {
	s, err := newSolution()
	if err != nil {
		return
	}
	layer, err := s.DCLayerThickness()
	if err != nil {
		return
	}
	fmt.Fprintf(w, "%s\n", s.Params().String())
	fmt.Fprintf(w, "%8.5f\t\t= Kappa\n", s.Kappa())
	fmt.Fprintf(w, "%s\t= DC layer thickness\n", layer.String())
	return
}
