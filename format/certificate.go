package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dpknap/minknap/core"
)

// ReadCertificate parses a `<instance>.sol` file: bare 0/1 tokens, one per
// original item index in order, exactly ins.TotalItemNumber() of them
// (ErrCertificateSizeMismatch for fewer or more).
// Used alongside the `knapsack_standard`/`subsetsum_standard` syntaxes,
// which (unlike Pisinger's) carry no solution of their own. ins must still
// be in its as-parsed, unsorted state, so position equals original index.
func ReadCertificate(r io.Reader, ins *core.Instance) (*core.Solution, error) {
	toks := newTokenizer(r)
	n := ins.TotalItemNumber()

	sol := core.NewSolution(n)
	for j := 0; j < n; j++ {
		tok, err := toks.next()
		if err == ErrMalformed {
			return nil, ErrCertificateSizeMismatch
		}
		if err != nil {
			return nil, err
		}
		x, err := strconv.Atoi(tok)
		if err != nil || (x != 0 && x != 1) {
			return nil, ErrMalformed
		}
		if x == 1 {
			it := ins.Item(core.ItemPos(j))
			sol.Set(j, true, it.W, it.P)
		}
	}
	if _, err := toks.next(); err == nil {
		return nil, ErrCertificateSizeMismatch
	}
	return sol, nil
}

// CheckCertificate validates sol against ins's original capacity: if its
// weight fits, returns its profit; otherwise returns -1. Mirrors the
// solution certificate's own validation contract, independent of however
// sol was produced (solved, read from a `.sol` file, or hand-built).
func CheckCertificate(ins *core.Instance, sol *core.Solution) core.Profit {
	if sol.Weight() > ins.TotalCapacity() {
		return -1
	}
	return sol.Profit()
}

// WriteCertificate writes sol as n bare 0/1 tokens, one per line, in
// original item index order — the inverse of ReadCertificate. Only
// membership is written; weights and profits are not.
func WriteCertificate(out io.Writer, sol *core.Solution, n int) error {
	for j := 0; j < n; j++ {
		x := 0
		if sol.Contains(core.ItemPos(j)) {
			x = 1
		}
		if _, err := fmt.Fprintf(out, "%d\n", x); err != nil {
			return err
		}
	}
	return nil
}
