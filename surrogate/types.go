package surrogate

import (
	"errors"

	"github.com/dpknap/minknap/core"
)

// ErrNotSorted indicates Search was called on an Instance that has not
// even been partially sorted (no break item to seed the cardinality test
// with).
var ErrNotSorted = errors.New("surrogate: instance has no break item")

// Result is the (UB, λ, k) triple the search returns.
type Result struct {
	UB     core.Profit
	Lambda core.Weight
	K      int
}
