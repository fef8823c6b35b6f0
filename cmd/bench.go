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
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
	"github.com/notargets/gostreaming/utils"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Times solution construction and field assembly",
	Long: `
Constructs the solution and evaluates an n x n field repeatedly, reporting wall time and, on Linux,
the retired CPU instruction count.

gostreaming bench -n 100 -r 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		reps, _ := cmd.Flags().GetInt("repeat")
		return RunBench(n, reps, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("n", "n", 50, "grid lines per axis")
	BenchCmd.Flags().IntP("repeat", "r", 3, "field evaluations")
}

func RunBench(n, reps int, w io.Writer) (err error) {
	var (
		s       *ElasticStreaming.Solution
		x       = utils.Linspace(-3, 3, n)
		start   = time.Now()
		elapsed time.Duration
	)
	if s, err = newSolution(); err != nil {
		return
	}
	fmt.Fprintf(w, "%v\t= construction time\n", time.Since(start))
	run := func() (err error) {
		for i := 0; i < reps; i++ {
			if _, _, _, err = s.Process(x, x); err != nil {
				return
			}
		}
		return
	}
	start = time.Now()
	instructions, perr := countInstructions(run)
	elapsed = time.Since(start)
	switch {
	case perr == errNoCounters:
		log.Debug("instruction counters unavailable, timing only")
		start = time.Now()
		if err = run(); err != nil {
			return
		}
		elapsed = time.Since(start)
	case perr != nil:
		return perr
	default:
		fmt.Fprintf(w, "%d\t= CPU instructions per field\n", instructions/uint64(max(reps, 1)))
	}
	fmt.Fprintf(w, "%v\t= time per %dx%d field\n", elapsed/time.Duration(max(reps, 1)), n, n)
	fmt.Fprintf(w, "%s\n", utils.GetMemUsage())
	return
}
