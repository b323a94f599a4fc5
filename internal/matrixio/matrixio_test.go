package matrixio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btf/internal/matrixio"
)

func TestReadPattern_RoundTrip(t *testing.T) {
	want := matrixio.Pattern{
		N:  3,
		Ap: []int{0, 1, 3, 5},
		Ai: []int{0, 1, 2, 1, 2},
	}

	var buf bytes.Buffer
	require.NoError(t, matrixio.WritePattern(&buf, want))

	got, err := matrixio.ReadPattern(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadPattern_IgnoresCommentsAndBlankLines(t *testing.T) {
	src := "# a fixture\nn 2\n\nap 0 1 2\nai 0 1\n"
	got, err := matrixio.ReadPattern(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, matrixio.Pattern{N: 2, Ap: []int{0, 1, 2}, Ai: []int{0, 1}}, got)
}

func TestReadPattern_RejectsMismatchedLengths(t *testing.T) {
	src := "n 2\nap 0 1 2\nai 0\n"
	_, err := matrixio.ReadPattern(strings.NewReader(src))
	assert.Error(t, err)
}

func TestReadPattern_RejectsMissingSection(t *testing.T) {
	src := "n 2\nap 0 1 2\n"
	_, err := matrixio.ReadPattern(strings.NewReader(src))
	assert.Error(t, err)
}
