// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	"github.com/kestrel-foundation/kestrel/harness"
	"github.com/kestrel-foundation/kestrel/kestrel"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run harness scenarios against a transaction processor",
	ArgsUsage: "<processor>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "filter",
			Usage: "run only scenarios which name matches the given regex",
			Value: ".*",
		},
		&cli.IntFlag{
			Name:  "iterations",
			Usage: "number of times each scenario is run",
			Value: 1,
		},
		&cli.BoolFlag{
			Name:  "keep-going",
			Usage: "continue running scenarios after a failure",
		},
	},
}

func doRun(context *cli.Context) error {
	identifier := harness.ReferenceProcessorName
	if context.Args().Len() >= 1 {
		identifier = context.Args().Get(0)
	}

	factory := kestrel.GetProcessorFactory(identifier)
	if factory == nil {
		names := maps.Keys(kestrel.GetAllRegisteredProcessorFactories())
		sort.Strings(names)
		return fmt.Errorf("invalid processor identifier %q, use one of: %v", identifier, names)
	}
	processor := factory()

	filter, err := regexp.Compile(context.String("filter"))
	if err != nil {
		return err
	}

	iterations := context.Int("iterations")
	if iterations <= 0 {
		iterations = 1
	}
	keepGoing := context.Bool("keep-going")

	fmt.Printf("Running scenarios on %q ...\n", identifier)

	failures := 0
	runs := 0
	start := time.Now()
	for _, scenario := range scenarios {
		if !filter.MatchString(scenario.Name) {
			continue
		}
		for i := 0; i < iterations; i++ {
			runs++
			if err := scenario.Run(processor); err != nil {
				failures++
				fmt.Printf("FAIL %s: %v\n", scenario.Name, err)
				if !keepGoing {
					return fmt.Errorf("scenario %s failed", scenario.Name)
				}
				break
			}
		}
	}

	duration := time.Since(start)
	rate := float64(runs) / duration.Seconds()
	fmt.Printf("Completed %d scenario runs in %v (~%s runs per second)\n",
		runs, duration.Round(time.Millisecond),
		unitconv.FormatPrefix(rate, unitconv.SI, 1))

	if failures > 0 {
		return fmt.Errorf("failed %d scenarios", failures)
	}
	fmt.Printf("All scenarios passed!\n")
	return nil
}
