// Package matrix holds the dense distance matrix every all-pairs solver
// reads and writes.
//
// A Distance is V×V, row-major, with 0 on the diagonal and +Inf (Inf) for
// pairs with no known path. Edges are directed: SetEdge(u, v, w) never
// touches the reverse cell. Solvers in package floyd always work on a Clone,
// so a generated graph can be solved many times from identical input.
//
//	d, _ := matrix.NewDistance(3)
//	_ = d.SetEdge(0, 1, 5)
//	fmt.Print(d)
//	// [0, 5, ∞]
//	// [∞, 0, ∞]
//	// [∞, ∞, 0]
package matrix
