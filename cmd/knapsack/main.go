// Command knapsack solves a single 0/1 knapsack instance file exactly (or
// heuristically, depending on --algorithm) and reports the result via exit
// code, an optional certificate write, and an optional verbose summary.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "knapsack",
		Usage:     "solve a 0/1 knapsack instance",
		ArgsUsage: "<instance-file>",
		Flags: flagsSlice(
			"algorithm", "upper-bound", "reduction", "surrogate",
			"cert", "output", "verbose",
		),
		Action: solveAction,
	}

	// solveAction always returns either nil or a cli.Exit error; App.Run
	// handles the latter itself (prints the message, exits with its code).
	// This only fires for something Run couldn't attribute to the action at
	// all — a flag-parsing failure before Action ever ran.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInputError)
	}
}
