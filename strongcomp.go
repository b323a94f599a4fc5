package btf

// node visitation states for Tarjan's algorithm, kept in Flag.
const (
	stateUnvisited = -2
	stateUnassigned = -1
	// states >= 0 are finished block numbers.
)

// StrongComp runs Tarjan's strongly-connected-component algorithm over
// the directed graph whose adjacency is the column pattern (Ap, Ai) of
// an n-by-n matrix, optionally column-permuted by q. It writes a row
// permutation into P (length n) and block boundaries into R (length
// n+1), and returns nblocks, the number of blocks found.
//
// If q is non-nil (length n, entries possibly Flip-encoded per the
// sign-flip convention), the graph explored is that of A*Q: column j of
// the DFS graph is resolved to real column Unflip(q[j]) of A. q is then
// updated in place to compose with the discovered row permutation,
// q[k] = q[P[k]], preserving any flipped entries by index.
//
// The DFS is iterative: Jstack holds the current path of node indices,
// Pstack the resumable scan position for each, and Cstack the
// SCC-in-progress stack, mirroring the (column, scan-position) frame
// discipline MaxTrans uses for its own non-recursive search.
func StrongComp(n int, Ap, Ai []int, q []int, P, R []int) int {
	requireLen("Ap", Ap, n+1)
	requireLen("Ai", Ai, Ap[n])
	requireLen("P", P, n)
	requireLen("R", R, n+1)
	if q != nil {
		requireLen("Q", q, n)
	}

	Time := make([]int, n)
	Low := make([]int, n)
	Flag := make([]int, n)
	for j := range Flag {
		Flag[j] = stateUnvisited
	}

	Cstack := make([]int, 0, n)
	Jstack := make([]int, 0, n)
	Pstack := make([]int, 0, n)

	timestamp := 0
	nblocks := 0

	for j0 := 0; j0 < n; j0++ {
		if Flag[j0] != stateUnvisited {
			continue
		}

		Jstack = append(Jstack, j0)
		Pstack = append(Pstack, 0)

		for len(Jstack) > 0 {
			top := len(Jstack) - 1
			j := Jstack[top]

			jj := j
			if q != nil {
				jj = Unflip(q[j])
			}
			pend := Ap[jj+1]

			if Flag[j] == stateUnvisited {
				// Prework: first arrival at j.
				Cstack = append(Cstack, j)
				timestamp++
				Time[j] = timestamp
				Low[j] = timestamp
				Flag[j] = stateUnassigned
				Pstack[top] = Ap[jj]
			}

			p := Pstack[top]
			pushed := false

			for ; p < pend; p++ {
				i := Ai[p]
				switch {
				case Flag[i] == stateUnvisited:
					Pstack[top] = p + 1
					Jstack = append(Jstack, i)
					Pstack = append(Pstack, 0)
					pushed = true
				case Flag[i] == stateUnassigned:
					Low[j] = min(Low[j], Time[i])
				default:
					// i belongs to an already-closed block: ignore.
				}
				if pushed {
					break
				}
			}

			if pushed {
				continue
			}

			// Postwork: adjacency of j exhausted (p == pend).
			Jstack = Jstack[:top]
			Pstack = Pstack[:top]

			if Low[j] == Time[j] {
				for {
					i := Cstack[len(Cstack)-1]
					Cstack = Cstack[:len(Cstack)-1]
					Flag[i] = nblocks
					if i == j {
						break
					}
				}
				nblocks++
			}

			if len(Jstack) > 0 {
				parent := Jstack[len(Jstack)-1]
				Low[parent] = min(Low[parent], Low[j])
			}
		}
	}

	buildBlocks(n, nblocks, Flag, P, R)

	if q != nil {
		newQ := make([]int, n)
		for k := 0; k < n; k++ {
			newQ[k] = q[P[k]]
		}
		copy(q, newQ)
	}

	return nblocks
}

// buildBlocks turns the per-node block assignment Flag into the R
// boundary array and the ascending-within-block row permutation P,
// per spec §4.4's "R construction" pass.
func buildBlocks(n, nblocks int, Flag, P, R []int) {
	for b := 0; b <= nblocks; b++ {
		R[b] = 0
	}
	for j := 0; j < n; j++ {
		R[Flag[j]+1]++
	}
	for b := 0; b < nblocks; b++ {
		R[b+1] += R[b]
	}

	next := make([]int, nblocks)
	copy(next, R[:nblocks])
	for j := 0; j < n; j++ {
		b := Flag[j]
		P[next[b]] = j
		next[b]++
	}

	R[nblocks] = n
}
