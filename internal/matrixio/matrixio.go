// Package matrixio reads and writes the small CSC text format used by the
// btforder demo CLI and its test fixtures. It exists only so the CLI and
// tests have a shared, human-reviewable on-disk format; the ordering core
// itself never depends on this package.
package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Pattern is a square sparse matrix's nonzero pattern in compressed-column
// form: n columns/rows, Ap of length n+1, Ai of length Ap[n].
type Pattern struct {
	N  int
	Ap []int
	Ai []int
}

// ReadPattern parses the CSC text format:
//
//	n <n>
//	ap <Ap[0]> <Ap[1]> ... <Ap[n]>
//	ai <Ai[0]> ... <Ai[nnz-1]>
//
// Blank lines and lines starting with "#" are ignored.
func ReadPattern(r io.Reader) (Pattern, error) {
	var p Pattern
	haveN, haveAp, haveAi := false, false, false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		keyword, rest := fields[0], fields[1:]

		switch keyword {
		case "n":
			if len(rest) != 1 {
				return Pattern{}, fmt.Errorf("matrixio: \"n\" line wants exactly one value, got %d", len(rest))
			}
			n, err := strconv.Atoi(rest[0])
			if err != nil {
				return Pattern{}, fmt.Errorf("matrixio: parse n: %w", err)
			}
			p.N = n
			haveN = true
		case "ap":
			ap, err := parseInts(rest)
			if err != nil {
				return Pattern{}, fmt.Errorf("matrixio: parse ap: %w", err)
			}
			p.Ap = ap
			haveAp = true
		case "ai":
			ai, err := parseInts(rest)
			if err != nil {
				return Pattern{}, fmt.Errorf("matrixio: parse ai: %w", err)
			}
			p.Ai = ai
			haveAi = true
		default:
			return Pattern{}, fmt.Errorf("matrixio: unrecognized line keyword %q", keyword)
		}
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, fmt.Errorf("matrixio: read: %w", err)
	}

	if !haveN || !haveAp || !haveAi {
		return Pattern{}, fmt.Errorf("matrixio: pattern missing one of n/ap/ai lines")
	}
	if len(p.Ap) != p.N+1 {
		return Pattern{}, fmt.Errorf("matrixio: ap has length %d, want n+1=%d", len(p.Ap), p.N+1)
	}
	if len(p.Ai) != p.Ap[p.N] {
		return Pattern{}, fmt.Errorf("matrixio: ai has length %d, want ap[n]=%d", len(p.Ai), p.Ap[p.N])
	}

	return p, nil
}

// WritePattern is ReadPattern's inverse: it writes p in the CSC text format.
func WritePattern(w io.Writer, p Pattern) error {
	if _, err := fmt.Fprintf(w, "n %d\n", p.N); err != nil {
		return err
	}
	if err := writeIntLine(w, "ap", p.Ap); err != nil {
		return err
	}
	return writeIntLine(w, "ai", p.Ai)
}

func writeIntLine(w io.Writer, keyword string, vals []int) error {
	if _, err := io.WriteString(w, keyword); err != nil {
		return err
	}
	for _, v := range vals {
		if _, err := fmt.Fprintf(w, " %d", v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func parseInts(fields []string) ([]int, error) {
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
