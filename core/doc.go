// Package core defines the central Item and Instance types for the 0/1
// knapsack solver, and provides the primitives the rest of the solver is
// built from: efficiency ordering, the break solution, prefix sums, the
// Dantzig/Dembo upper bounds, and the partial-solution codec used by the
// expanding-core DP.
//
// Under the hood, an Instance owns a single permuted slice of Items and a
// handful of index bounds (f, l, s, t, b) that describe which region is
// fixed, which region is sorted, and where the break item currently sits.
// Nothing here is safe for concurrent mutation: a solve is single-threaded
// by design (see the surrogate trial-solve copy in clone.go for the one
// place two Instances are ever alive on the same data at once).
//
//	core/       — Item, Instance, ordering, break solution, bounds, codec
//
// Quick mental model:
//
//	[0 ........ f) [f ... s) [s ......... t] (t ... l] (l ........ N)
//	  fixed IN        pending    sorted core   pending     fixed OUT
//	                  (int_left)  b in [s,t+1]  (int_right)
//
package core
