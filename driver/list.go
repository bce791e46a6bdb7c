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

	"github.com/urfave/cli/v2"
)

var ListCmd = cli.Command{
	Action: doList,
	Name:   "list",
	Usage:  "List all scenarios by name",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "filter",
			Usage: "list only scenarios which name matches the given regex",
			Value: ".*",
		},
	},
}

func doList(context *cli.Context) error {
	filter, err := regexp.Compile(context.String("filter"))
	if err != nil {
		return err
	}

	names := []string{}
	for _, scenario := range scenarios {
		if filter.MatchString(scenario.Name) {
			names = append(names, scenario.Name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
