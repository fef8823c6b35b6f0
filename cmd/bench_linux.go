//go:build linux

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
	"errors"

	"github.com/hodgesds/perf-utils"
)

var errNoCounters = errors.New("hardware counters unavailable")

// countInstructions runs fn under a perf instruction counter
func countInstructions(fn func() error) (instructions uint64, err error) {
	var (
		fnErr error
		pv    *perf.ProfileValue
	)
	pv, err = perf.CPUInstructions(func() error {
		fnErr = fn()
		return fnErr
	})
	switch {
	case fnErr != nil:
		return 0, fnErr
	case err != nil:
		// perf_event_open is commonly denied in containers
		return 0, errNoCounters
	}
	instructions = pv.Value
	return
}
