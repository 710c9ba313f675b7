package kmap

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/rmohr/logicmin/pkg/cover"
	"github.com/rmohr/logicmin/pkg/qmc"
	"github.com/rmohr/logicmin/pkg/render"
)

// GraySequence lists the reflected Gray code of the given width.
func GraySequence(bits int) []uint {
	seq := make([]uint, 1<<uint(bits))
	for i := range seq {
		seq[i] = uint(i) ^ uint(i)>>1
	}
	return seq
}

// Cell addresses one square of the map.
type Cell struct {
	Row, Col int
}

// Map is a Gray-ordered grid. The first RowBits variables select the row,
// the remaining ones the column.
type Map struct {
	Vars    int
	RowBits int
	ColBits int
	Rows    []uint
	Cols    []uint
	Cells   [][]bool
}

// New marks terms on an empty map over n variables.
func New(terms []uint, n int) *Map {
	m := &Map{Vars: n, RowBits: n / 2, ColBits: n - n/2}
	m.Rows = GraySequence(m.RowBits)
	m.Cols = GraySequence(m.ColBits)
	set := mapset.NewThreadUnsafeSet(terms...)
	m.Cells = make([][]bool, len(m.Rows))
	for r := range m.Rows {
		m.Cells[r] = make([]bool, len(m.Cols))
		for c := range m.Cols {
			m.Cells[r][c] = set.Contains(m.Term(Cell{r, c}))
		}
	}
	return m
}

// Term is the term a cell stands for.
func (m *Map) Term(c Cell) uint {
	return m.Rows[c.Row]<<uint(m.ColBits) | m.Cols[c.Col]
}

// RowLabels renders the row codes in grid order.
func (m *Map) RowLabels() []string {
	return labels(m.Rows, m.RowBits)
}

// ColLabels renders the column codes in grid order.
func (m *Map) ColLabels() []string {
	return labels(m.Cols, m.ColBits)
}

func labels(codes []uint, bits int) []string {
	out := make([]string, len(codes))
	for i, code := range codes {
		if bits > 0 {
			out[i] = string(qmc.FromTerm(code, bits))
		}
	}
	return out
}

// Group is a rectangle of ones. Along each axis it spans a Gray sub-cube, so
// it can be written as one implicant.
type Group struct {
	Implicant qmc.Implicant
	Cells     mapset.Set[Cell]
}

// patterns lists every implicant of the given width.
func patterns(bits int) []qmc.Implicant {
	out := []qmc.Implicant{""}
	for k := 0; k < bits; k++ {
		var next []qmc.Implicant
		for _, p := range out {
			next = append(next, p+"-", p+"0", p+"1")
		}
		out = next
	}
	return out
}

func matching(codes []uint, bits int, p qmc.Implicant) []int {
	var out []int
	for i, code := range codes {
		if bits == 0 || p.Covers(code) {
			out = append(out, i)
		}
	}
	return out
}

func (m *Map) full(rows, cols []int) bool {
	for _, r := range rows {
		for _, c := range cols {
			if !m.Cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Groups returns the maximal rectangles of ones, sorted by implicant. A
// rectangle is maximal when doubling it along any fixed variable would take
// in a zero.
func (m *Map) Groups() []Group {
	type span struct{ rows, cols []int }
	full := map[qmc.Implicant]span{}
	for _, rp := range patterns(m.RowBits) {
		rows := matching(m.Rows, m.RowBits, rp)
		for _, cp := range patterns(m.ColBits) {
			cols := matching(m.Cols, m.ColBits, cp)
			if m.full(rows, cols) {
				full[rp+cp] = span{rows, cols}
			}
		}
	}

	var maximal []Group
	for imp, s := range full {
		widened := false
		for k := 0; k < len(imp) && !widened; k++ {
			if imp[k] != '-' {
				_, widened = full[imp[:k]+"-"+imp[k+1:]]
			}
		}
		if widened {
			continue
		}
		cells := mapset.NewThreadUnsafeSet[Cell]()
		for _, r := range s.rows {
			for _, c := range s.cols {
				cells.Add(Cell{r, c})
			}
		}
		maximal = append(maximal, Group{Implicant: imp, Cells: cells})
	}
	sort.Slice(maximal, func(i, j int) bool { return maximal[i].Implicant < maximal[j].Implicant })
	return maximal
}

// Ones lists the marked cells in row-major order.
func (m *Map) Ones() []Cell {
	var out []Cell
	for r := range m.Cells {
		for c := range m.Cells[r] {
			if m.Cells[r][c] {
				out = append(out, Cell{r, c})
			}
		}
	}
	return out
}

// Select picks the groups that are the sole cover of some cell, then adds
// groups covering the most uncovered cells, smallest implicant first on ties.
func (m *Map) Select(groups []Group) []Group {
	ones := m.Ones()
	chosen := make([]bool, len(groups))
	uncovered := mapset.NewThreadUnsafeSet(ones...)
	take := func(i int) {
		chosen[i] = true
		uncovered = uncovered.Difference(groups[i].Cells)
	}
	for _, cell := range ones {
		sole := -1
		for i, g := range groups {
			if !g.Cells.Contains(cell) {
				continue
			}
			if sole >= 0 {
				sole = -1
				break
			}
			sole = i
		}
		if sole >= 0 && !chosen[sole] {
			take(sole)
		}
	}
	for uncovered.Cardinality() > 0 {
		best, bestCount := -1, 0
		for i, g := range groups {
			if chosen[i] {
				continue
			}
			if count := g.Cells.Intersect(uncovered).Cardinality(); count > bestCount {
				best, bestCount = i, count
			}
		}
		if best < 0 {
			break
		}
		take(best)
	}
	var out []Group
	for i, g := range groups {
		if chosen[i] {
			out = append(out, g)
		}
	}
	return out
}

// Result is the geometric minimization of one normal form.
type Result struct {
	Map      *Map
	Groups   []Group
	Selected []qmc.Implicant
	Clauses  []string
}

// Expression joins the selected clauses.
func (r *Result) Expression(form render.Form) string {
	return render.Join(r.Clauses, form)
}

// Minimize groups terms on a Karnaugh map. For DNF terms are the minterms,
// for CNF the maxterms.
func Minimize(terms []uint, n int, names []string, form render.Form) *Result {
	m := New(terms, n)
	res := &Result{Map: m, Groups: m.Groups()}
	var imps []qmc.Implicant
	for _, g := range m.Select(res.Groups) {
		imps = append(imps, g.Implicant)
	}
	imps = cover.Prune(imps, terms)
	res.Selected = cover.Subsume(imps, names, form)
	for _, imp := range res.Selected {
		res.Clauses = append(res.Clauses, render.Clause(imp, names, form))
	}
	return res
}

// String draws the map with ones as 1 and zeros as 0, one row per line.
func (m *Map) String() string {
	var sb strings.Builder
	for r := range m.Cells {
		for c := range m.Cells[r] {
			if m.Cells[r][c] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
