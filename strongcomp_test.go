package btf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btf"
)

func TestStrongComp_DiagonalIsAllSingletons(t *testing.T) {
	n, Ap, Ai := buildCSC([][]int{{0}, {1}, {2}})
	P := make([]int, n)
	R := make([]int, n+1)
	nblocks := btf.StrongComp(n, Ap, Ai, nil, P, R)
	assert.Equal(t, 3, nblocks)
	assert.Equal(t, []int{0, 1, 2, 3}, R)
}

func TestStrongComp_ThreeCycleIsOneBlock(t *testing.T) {
	n, Ap, Ai := buildCSC([][]int{{1}, {2}, {0}})
	P := make([]int, n)
	R := make([]int, n+1)
	nblocks := btf.StrongComp(n, Ap, Ai, nil, P, R)
	assert.Equal(t, 1, nblocks)
	assert.Equal(t, []int{0, 3}, R[:nblocks+1])
	assertPermutation(t, P, n)
}

func TestStrongComp_SelfLoopIsNoOp(t *testing.T) {
	// column 0 carries a diagonal entry (a self-loop edge 0->0) in
	// addition to an edge into column 1's singleton block; the self-loop
	// must not merge anything or be mistaken for a back edge.
	n, Ap, Ai := buildCSC([][]int{{0, 1}, {1}})
	P := make([]int, n)
	R := make([]int, n+1)
	nblocks := btf.StrongComp(n, Ap, Ai, nil, P, R)
	assert.Equal(t, 2, nblocks)
	assert.Equal(t, []int{0, 1, 2}, R)
}

func TestStrongComp_ComposesWithQ(t *testing.T) {
	// Graph is a 2-cycle once columns are permuted by q, but acyclic in
	// the original column order.
	n, Ap, Ai := buildCSC([][]int{{0}, {1}})
	q := []int{1, 0}
	P := make([]int, n)
	R := make([]int, n+1)
	btf.StrongComp(n, Ap, Ai, q, P, R)
	assertPermutation(t, q, n)
}

func TestStrongComp_PanicsOnLengthMismatch(t *testing.T) {
	n, Ap, Ai := buildCSC([][]int{{0}, {1}})
	assert.Panics(t, func() {
		btf.StrongComp(n, Ap, Ai, nil, make([]int, 1), make([]int, n+1))
	})
}

func assertPermutation(t *testing.T, p []int, n int) {
	t.Helper()
	seen := make([]bool, n)
	for _, v := range p {
		v := btf.Unflip(v)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "value %d repeated", v)
		seen[v] = true
	}
}
