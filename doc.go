// Package btf computes a block triangular form ordering of a square
// sparse matrix given only its nonzero pattern: a maximum transversal
// (bipartite matching between rows and columns), completion of that
// matching when the matrix is structurally singular, and a strongly
// connected component decomposition of the matched, column-permuted
// graph. See Order for the entry point.
package btf
