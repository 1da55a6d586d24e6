package reduce

import "errors"

var (
	// ErrNotPartiallySorted indicates Reduce1 was called on an Instance that
	// has not even had sort_partially run (no break item available).
	ErrNotPartiallySorted = errors.New("reduce: instance has no break item")

	// ErrNotFullySorted indicates Reduce2 was called on an Instance that is
	// not fully sorted; Reduce2 needs prefix sums over the whole core.
	ErrNotFullySorted = errors.New("reduce: instance is not fully sorted")
)
