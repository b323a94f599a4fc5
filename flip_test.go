package btf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"btf"
)

func TestFlip_Involution(t *testing.T) {
	for j := -1; j < 100; j++ {
		assert.Equal(t, j, btf.Flip(btf.Flip(j)), "flip(flip(j)) must equal j")
	}
}

func TestFlip_EmptyFixpoint(t *testing.T) {
	assert.Equal(t, btf.Empty, btf.Flip(btf.Empty))
}

func TestIsFlipped(t *testing.T) {
	for j := 0; j < 50; j++ {
		assert.True(t, btf.IsFlipped(btf.Flip(j)), "flip(j) for j>=0 must be flagged as flipped")
	}
	assert.False(t, btf.IsFlipped(btf.Empty))
	for j := 0; j < 50; j++ {
		assert.False(t, btf.IsFlipped(j))
	}
}

func TestUnflip(t *testing.T) {
	for j := 0; j < 50; j++ {
		assert.Equal(t, j, btf.Unflip(btf.Flip(j)))
		assert.Equal(t, j, btf.Unflip(j))
	}
	assert.Equal(t, btf.Empty, btf.Unflip(btf.Empty))
}
