package btf

// Order computes a block triangular form of the n-by-n pattern (Ap,
// Ai): a maximum transversal, completed to a full column permutation
// if the matrix is structurally rank-deficient, followed by a strongly
// connected component decomposition of the resulting permuted graph.
//
// P, Q must have length n and R length n+1; all three are caller-
// allocated and filled in place, mirroring the three-step pipeline of
// MaxTrans, the completion step, and StrongComp (spec §4.5). Q ends up
// holding the matching itself: Q[k] is the original column matched
// into position k, Flip-encoded wherever that column was structurally
// zero on the diagonal.
func Order(n int, Ap, Ai []int, opts Options, P, Q, R []int) Result {
	requireLen("Q", Q, n)

	nmatch, work := MaxTrans(n, Ap, Ai, opts, Q)

	if nmatch < n {
		completeMatch(n, Q)
	}

	nblocks := StrongComp(n, Ap, Ai, Q, P, R)

	return Result{
		NBlocks: nblocks,
		NMatch:  nmatch,
		Work:    work,
	}
}
