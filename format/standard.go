package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/dpknap/minknap/core"
)

// ReadStandard parses the `knapsack_standard` syntax: a token stream of
// "n c" followed by n "p w" pairs (profit before weight, as the original
// format orders its columns), whitespace-delimited throughout — newlines
// carry no syntactic weight, matching the original's stream-extraction
// reader. Complexity: O(n).
func ReadStandard(r io.Reader) (*core.Instance, error) {
	toks := newTokenizer(r)

	n, err := toks.int()
	if err != nil {
		return nil, err
	}
	c, err := toks.int64()
	if err != nil {
		return nil, err
	}

	ins := core.NewInstance(n, c)
	for j := 0; j < n; j++ {
		p, err := toks.int64()
		if err != nil {
			return nil, err
		}
		w, err := toks.int64()
		if err != nil {
			return nil, err
		}
		if err := ins.AddItem(w, p); err != nil {
			return nil, err
		}
	}
	return ins, nil
}

// ReadSubsetSumStandard parses the `subsetsum_standard` syntax: "n c"
// followed by n bare weights, each item's profit set equal to its weight.
// Complexity: O(n).
func ReadSubsetSumStandard(r io.Reader) (*core.Instance, error) {
	toks := newTokenizer(r)

	n, err := toks.int()
	if err != nil {
		return nil, err
	}
	c, err := toks.int64()
	if err != nil {
		return nil, err
	}

	ins := core.NewInstance(n, c)
	for j := 0; j < n; j++ {
		w, err := toks.int64()
		if err != nil {
			return nil, err
		}
		if err := ins.AddItem(w, w); err != nil {
			return nil, err
		}
	}
	return ins, nil
}

// WriteStandard serializes ins in the `knapsack_standard` syntax. Assumes
// ins is still in its as-parsed, unsorted state, so item position equals
// original index; writing after Sort has run would reorder the output.
func WriteStandard(w io.Writer, ins *core.Instance) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", ins.TotalItemNumber(), ins.TotalCapacity()); err != nil {
		return err
	}
	for pos := 0; pos < ins.TotalItemNumber(); pos++ {
		it := ins.Item(core.ItemPos(pos))
		if _, err := fmt.Fprintf(w, "%d %d\n", it.P, it.W); err != nil {
			return err
		}
	}
	return nil
}

// WriteSubsetSumStandard serializes ins in the `subsetsum_standard`
// syntax, dropping the (redundant, weight-equal) profit column. Same
// as-parsed ordering assumption as WriteStandard.
func WriteSubsetSumStandard(w io.Writer, ins *core.Instance) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", ins.TotalItemNumber(), ins.TotalCapacity()); err != nil {
		return err
	}
	for pos := 0; pos < ins.TotalItemNumber(); pos++ {
		it := ins.Item(core.ItemPos(pos))
		if _, err := fmt.Fprintf(w, "%d\n", it.W); err != nil {
			return err
		}
	}
	return nil
}

// tokenizer pulls whitespace-delimited integer tokens off r one at a time,
// independent of line breaks.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrMalformed
	}
	return t.sc.Text(), nil
}

func (t *tokenizer) int() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrMalformed
	}
	return v, nil
}

func (t *tokenizer) int64() (int64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, ErrMalformed
	}
	return v, nil
}
