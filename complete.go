package btf

// completeMatch extends a partial Match into a full column permutation by
// pairing every unmatched row with a distinct unmatched ("bad") column,
// flipping the column index to flag the pairing as structurally zero
// (spec §4.3). Traversal order is ascending in both rows and columns;
// the output contract never depends on a particular order (spec §9).
func completeMatch(n int, Match []int) {
	matchedCol := make([]bool, n)
	for i := 0; i < n; i++ {
		if Match[i] >= 0 {
			matchedCol[Match[i]] = true
		}
	}

	bad := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if !matchedCol[j] {
			bad = append(bad, j)
		}
	}

	k := 0
	for i := 0; i < n; i++ {
		if Match[i] == Empty {
			Match[i] = Flip(bad[k])
			k++
		}
	}
}
