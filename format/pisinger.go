package format

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/dpknap/minknap/core"
)

// ReadPisinger parses Pisinger's comma-delimited benchmark syntax:
//
//	<name>
//	n <count>
//	c <capacity>
//	z <optimal value, ignored — recomputed independently>
//	<blank line>
//	<id>,<profit>,<weight>,<x>
//	...
//
// one data line per item, x being 0 or 1 in the file's own known-optimal
// certificate. Returns the parsed Instance plus that embedded optimal
// Solution, which is never nil: when no item line sets x=1 it is an empty
// Solution.
// Complexity: O(n).
func ReadPisinger(r io.Reader) (*core.Instance, *core.Solution, error) {
	lr := bufio.NewReader(r)

	if _, err := readLine(lr); err != nil { // name, unused beyond this point
		return nil, nil, err
	}

	n, err := readLabeledInt(lr)
	if err != nil {
		return nil, nil, err
	}
	c, err := readLabeledInt(lr)
	if err != nil {
		return nil, nil, err
	}
	if _, err := readLabeledInt(lr); err != nil { // z, the file's own optimal value
		return nil, nil, err
	}
	if _, err := readLine(lr); err != nil { // blank separator line
		return nil, nil, err
	}

	ins := core.NewInstance(n, int64(c))
	sol := core.NewSolution(n)
	for j := 0; j < n; j++ {
		line, err := readLine(lr)
		if err != nil {
			return nil, nil, err
		}
		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return nil, nil, ErrMalformed
		}
		p, err1 := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		w, err2 := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
		x, err3 := strconv.Atoi(strings.TrimSpace(fields[3]))
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, nil, ErrMalformed
		}
		if err := ins.AddItem(w, p); err != nil {
			return nil, nil, err
		}
		if x == 1 {
			sol.Set(j, true, w, p)
		}
	}
	return ins, sol, nil
}

// readLabeledInt reads a "<label> <value>" line and returns value, the
// label itself discarded — Pisinger's header fields (n, c, z) are each one
// such line.
func readLabeledInt(r *bufio.Reader) (int, error) {
	line, err := readLine(r)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, ErrMalformed
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, ErrMalformed
	}
	return v, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
