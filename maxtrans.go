package btf

import "math"

// MaxTrans computes a maximum (or work-limited) transversal: a bipartite
// matching between the rows and columns of the n-by-n pattern (Ap, Ai)
// in compressed-column form. Match must have length n; on return,
// Match[i] holds the column matched to row i, or Empty if row i is
// unmatched. nmatch is the number of matched rows. work reports the
// augmenting-path work consumed, or -1 if opts.MaxWork was struck
// before the search finished (in which case Match still holds a valid,
// possibly sub-maximal matching).
func MaxTrans(n int, Ap, Ai []int, opts Options, Match []int) (nmatch int, work float64) {
	requireLen("Ap", Ap, n+1)
	nnz := Ap[n]
	requireLen("Ai", Ai, nnz)
	requireLen("Match", Match, n)

	for i := range Match {
		Match[i] = Empty
	}

	// matchCol[j] is the row currently matched to column j, or Empty.
	matchCol := make([]int, n)
	for j := range matchCol {
		matchCol[j] = Empty
	}

	// Cheap match pass: O(nnz), not counted against the work limit.
	for j := 0; j < n; j++ {
		for p := Ap[j]; p < Ap[j+1]; p++ {
			i := Ai[p]
			if Match[i] == Empty {
				Match[i] = j
				matchCol[j] = i
				break
			}
		}
	}

	limit := math.Inf(1)
	if opts.MaxWork > 0 {
		limit = opts.MaxWork * float64(nnz)
	}

	// rowMark/colMark hold the id (start column) of the last augmenting
	// attempt that visited them, avoiding an O(n) clear per attempt.
	rowMark := make([]int, n)
	colMark := make([]int, n)
	for i := range rowMark {
		rowMark[i] = Empty
	}
	for j := range colMark {
		colMark[j] = Empty
	}

	jstack := make([]int, 0, n)
	pstack := make([]int, 0, n)
	viaRow := make([]int, 0, n)

	var workUnits float64
	hitLimit := false

	for j0 := 0; j0 < n && !hitLimit; j0++ {
		if matchCol[j0] != Empty {
			continue
		}

		jstack = append(jstack[:0], j0)
		pstack = append(pstack[:0], Ap[j0])
		viaRow = append(viaRow[:0], Empty)
		colMark[j0] = j0

		found := false
		for len(jstack) > 0 {
			top := len(jstack) - 1
			j := jstack[top]
			p := pstack[top]
			pend := Ap[j+1]
			pushed := false

			for ; p < pend; p++ {
				workUnits++
				if workUnits > limit {
					hitLimit = true
					break
				}

				i := Ai[p]
				if rowMark[i] == j0 {
					continue
				}
				rowMark[i] = j0

				if Match[i] == Empty {
					pstack[top] = p + 1
					rewindMatch(jstack, viaRow, Match, matchCol, i)
					found = true
					break
				}

				j2 := Match[i]
				if colMark[j2] != j0 {
					colMark[j2] = j0
					pstack[top] = p + 1
					jstack = append(jstack, j2)
					pstack = append(pstack, Ap[j2])
					viaRow = append(viaRow, i)
					pushed = true
					break
				}
			}

			if hitLimit || found {
				break
			}
			if pushed {
				continue
			}

			// Adjacency exhausted with no augmenting path through j: backtrack.
			jstack = jstack[:top]
			pstack = pstack[:top]
			viaRow = viaRow[:top]
		}
	}

	if hitLimit {
		work = -1
	} else {
		work = workUnits
	}

	for i := 0; i < n; i++ {
		if Match[i] != Empty {
			nmatch++
		}
	}

	return nmatch, work
}

// rewindMatch applies the augmenting path recorded in jstack/viaRow,
// rewiring Match (and the matchCol mirror) so that the newly discovered
// unmatched row lastRow joins the matching and every column along the
// path takes over the row that previously led into it.
func rewindMatch(jstack, viaRow, Match, matchCol []int, lastRow int) {
	row := lastRow
	for d := len(jstack) - 1; d >= 0; d-- {
		col := jstack[d]
		Match[row] = col
		matchCol[col] = row
		if d == 0 {
			break
		}
		row = viaRow[d]
	}
}
