package qmc

import (
	"strconv"
	"strings"
)

// MaxVariables is the widest term a uint can index.
const MaxVariables = strconv.IntSize

// Implicant is a fixed-width pattern over {0,1,-}. The first character
// belongs to the most significant bit, i.e. the first variable.
type Implicant string

// FromTerm renders term as a fully specified implicant of the given width.
func FromTerm(term uint, width int) Implicant {
	s := strconv.FormatUint(uint64(term), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return Implicant(s)
}

// Ones counts the 1 positions, the grouping key of the merge rounds.
func (i Implicant) Ones() int {
	return strings.Count(string(i), "1")
}

// Dashes counts the don't-care positions.
func (i Implicant) Dashes() int {
	return strings.Count(string(i), "-")
}

// Covers reports whether term lies inside the implicant.
func (i Implicant) Covers(term uint) bool {
	w := len(i)
	for k := 0; k < w; k++ {
		bit := (term >> uint(w-1-k)) & 1
		switch i[k] {
		case '-':
		case '0':
			if bit != 0 {
				return false
			}
		case '1':
			if bit != 1 {
				return false
			}
		}
	}
	return true
}

// Terms expands the implicant into every term it covers, ascending.
func (i Implicant) Terms() []uint {
	out := []uint{0}
	for k := 0; k < len(i); k++ {
		switch i[k] {
		case '0':
			for j := range out {
				out[j] <<= 1
			}
		case '1':
			for j := range out {
				out[j] = out[j]<<1 | 1
			}
		default:
			next := make([]uint, 0, 2*len(out))
			for _, t := range out {
				next = append(next, t<<1, t<<1|1)
			}
			out = next
		}
	}
	return out
}

// Merge combines two implicants that share their dash positions and differ
// in exactly one other position, which becomes a dash.
func Merge(a, b Implicant) (Implicant, bool) {
	if len(a) != len(b) {
		return "", false
	}
	diff := -1
	for k := 0; k < len(a); k++ {
		if (a[k] == '-') != (b[k] == '-') {
			return "", false
		}
		if a[k] != b[k] {
			if diff >= 0 {
				return "", false
			}
			diff = k
		}
	}
	if diff < 0 {
		return "", false
	}
	return a[:diff] + "-" + a[diff+1:], true
}
