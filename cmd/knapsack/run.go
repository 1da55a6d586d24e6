package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dpknap/minknap/core"
	"github.com/dpknap/minknap/format"
	"github.com/dpknap/minknap/greedy"
	"github.com/dpknap/minknap/minknap"
)

// Exit codes: 0 success+optimal, 1 success+feasible (not proven optimal),
// 2 input error, 3 infeasible.
const (
	exitOptimal    = 0
	exitFeasible   = 1
	exitInputError = 2
	exitInfeasible = 3
)

// solveAction is the CLI's sole Action: parse flags, load one instance
// file, run the requested algorithm, optionally validate/write a
// certificate, and exit with the code the solved Result implies.
func solveAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("knapsack: an instance file path is required", exitInputError)
	}

	ins, embeddedCert, err := format.ReadInstance(path, format.Options{
		CertificatePath: c.String("cert"),
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("knapsack: reading %s: %v", path, err), exitInputError)
	}

	algorithm := c.String("algorithm")
	if !contains(validAlgorithms, algorithm) {
		return cli.Exit(fmt.Sprintf("knapsack: unknown algorithm %q", algorithm), exitInputError)
	}

	res, err := solveWith(ins, algorithm, c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("knapsack: %v", err), exitInputError)
	}

	if embeddedCert != nil && c.Bool("verbose") {
		fmt.Fprintf(os.Stdout, "embedded certificate check: %d\n", format.CheckCertificate(ins, embeddedCert))
	}

	if out := c.String("output"); out != "" {
		if err := writeSolution(out, res.Solution, ins.TotalItemNumber()); err != nil {
			return cli.Exit(fmt.Sprintf("knapsack: writing %s: %v", out, err), exitInputError)
		}
	}

	if c.Bool("verbose") {
		renderSummary(os.Stdout, path, algorithm, ins, res)
	}

	return cli.Exit("", exitCodeFor(ins, res))
}

// solveWith dispatches to the requested algorithm. greedy/greedynlogn run
// their single heuristic pass and are never proven optimal; dp-minknap
// runs the full warm-start/surrogate/reduction/DP pipeline; the remaining
// spec-recognized values have no implementation.
func solveWith(ins *core.Instance, algorithm string, c *cli.Context) (minknap.Result, error) {
	switch algorithm {
	case "greedy":
		ins.SortPartially(core.PartSolCapacity)
		sol, err := greedy.Solve(ins)
		if err != nil {
			return minknap.Result{}, err
		}
		return minknap.Result{Solution: sol, ProvenOptimal: false}, nil
	case "greedynlogn":
		ins.Sort()
		sol, err := greedy.SolveNLogN(ins)
		if err != nil {
			return minknap.Result{}, err
		}
		return minknap.Result{Solution: sol, ProvenOptimal: false}, nil
	case "dp-minknap":
		opts, err := optionsFromFlags(c)
		if err != nil {
			return minknap.Result{}, err
		}
		return minknap.Solve(ins, opts)
	default:
		return minknap.Result{}, minknap.ErrAlgorithmNotImplemented
	}
}

func optionsFromFlags(c *cli.Context) (minknap.Options, error) {
	opts := minknap.DefaultOptions()

	switch c.String("upper-bound") {
	case "dantzig":
		opts.UpperBound = minknap.UpperBoundDantzig
	case "trivial":
		opts.UpperBound = minknap.UpperBoundTrivial
	default:
		return opts, fmt.Errorf("unknown upper-bound %q", c.String("upper-bound"))
	}

	switch c.Int("reduction") {
	case 0:
		opts.Reduction = minknap.NoReduction
	case 1:
		opts.Reduction = minknap.Reduce1Level
	case 2:
		opts.Reduction = minknap.Reduce2Level
	default:
		return opts, fmt.Errorf("reduction must be 0, 1, or 2, got %d", c.Int("reduction"))
	}

	opts.Surrogate = c.Bool("surrogate")
	return opts, nil
}

// exitCodeFor maps a solved Result to the command's exit codes: infeasible
// takes priority over a merely-empty-by-choice optimum (every item that
// fits has zero profit, say), which is exit 0 like any other proven-optimal
// result.
func exitCodeFor(ins *core.Instance, res minknap.Result) int {
	if res.Solution.Empty() && isInfeasible(ins) {
		return exitInfeasible
	}
	if !res.ProvenOptimal {
		return exitFeasible
	}
	return exitOptimal
}

// isInfeasible reports whether no single item fits the instance's
// original capacity, the definition of "infeasible" this command exits 3 for.
func isInfeasible(ins *core.Instance) bool {
	for pos := 0; pos < ins.TotalItemNumber(); pos++ {
		if ins.Item(pos).W <= ins.TotalCapacity() {
			return false
		}
	}
	return true
}

func writeSolution(path string, sol *core.Solution, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return format.WriteCertificate(f, sol, n)
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
