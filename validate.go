package btf

import "fmt"

// requireLen panics if s does not have exactly want elements. Caller-buffer
// length mismatches are programmer errors, not runtime conditions the core
// is specified to signal through output fields (see spec §7/§9).
func requireLen(name string, s []int, want int) {
	if len(s) != want {
		panic(fmt.Sprintf("btf: %s has length %d, want %d", name, len(s), want))
	}
}
