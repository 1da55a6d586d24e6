package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// validAlgorithms lists every --algorithm value this command recognizes.
// Only greedy, greedynlogn, and dp-minknap have a retrievable
// implementation; the rest resolve to minknap.ErrAlgorithmNotImplemented.
var validAlgorithms = []string{"greedy", "greedynlogn", "dp-bellman", "dp-balknap", "dp-minknap", "bab-star"}

var validUpperBounds = []string{"dantzig", "trivial"}

// appFlagsMap centralizes flag definitions so the single solve command can
// select its full set in one place, independent of definition order.
var appFlagsMap = map[string]cli.Flag{
	"algorithm": &cli.StringFlag{
		Name:  "algorithm",
		Usage: fmt.Sprintf("algorithm to run: %v", validAlgorithms),
		Value: "dp-minknap",
	},
	"upper-bound": &cli.StringFlag{
		Name:  "upper-bound",
		Usage: fmt.Sprintf("upper bound used by dp-minknap: %v", validUpperBounds),
		Value: "dantzig",
	},
	"reduction": &cli.IntFlag{
		Name:  "reduction",
		Usage: "variable-reduction level used by dp-minknap: 0, 1, or 2",
		Value: 2,
	},
	"surrogate": &cli.BoolFlag{
		Name:  "surrogate",
		Usage: "attempt a surrogate-relaxation upper bound before reduction",
		Value: true,
	},
	"cert": &cli.StringFlag{
		Name:  "cert",
		Usage: "path to a known-solution certificate to validate against the instance",
	},
	"output": &cli.StringFlag{
		Name:  "output",
		Usage: "path to write the solved certificate to",
	},
	"verbose": &cli.BoolFlag{
		Name:  "verbose",
		Usage: "print an instance/result summary table",
	},
}

// flagsSlice converts selected appFlagsMap keys to a slice, in the order
// requested.
func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}
