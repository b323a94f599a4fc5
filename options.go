package btf

// Options bundles the ordering core's tunable knobs. The zero value
// (MaxWork == 0) means unlimited augmenting-path work.
type Options struct {
	// MaxWork caps the work spent searching for augmenting paths during
	// MaxTrans at MaxWork*nnz(A). A value <= 0 means no limit.
	MaxWork float64
}

// Result bundles Order's outputs that aren't written into caller slices.
type Result struct {
	NBlocks int     // number of blocks (SCCs) found
	NMatch  int     // number of structurally nonzero diagonal entries
	Work    float64 // augmenting-path work consumed, or -1 if MaxWork was struck
}
