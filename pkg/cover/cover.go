package cover

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/rmohr/logicmin/pkg/qmc"
	"github.com/rmohr/logicmin/pkg/render"
)

// Table records which implicant covers which term. Marks[i][j] is set when
// Implicants[i] covers Terms[j].
type Table struct {
	Implicants []qmc.Implicant
	Terms      []uint
	Marks      [][]bool
}

func NewTable(implicants []qmc.Implicant, terms []uint) *Table {
	t := &Table{Implicants: implicants, Terms: terms}
	for _, imp := range implicants {
		row := make([]bool, len(terms))
		for j, term := range terms {
			row[j] = imp.Covers(term)
		}
		t.Marks = append(t.Marks, row)
	}
	return t
}

// Essential returns the implicants that are the only cover of at least one
// term, sorted.
func (t *Table) Essential() []qmc.Implicant {
	essential := mapset.NewThreadUnsafeSet[qmc.Implicant]()
	for j := range t.Terms {
		sole := -1
		for i := range t.Implicants {
			if !t.Marks[i][j] {
				continue
			}
			if sole >= 0 {
				sole = -1
				break
			}
			sole = i
		}
		if sole >= 0 {
			essential.Add(t.Implicants[sole])
		}
	}
	return sorted(essential)
}

// SelectCovering picks the essential implicants and then adds, while terms
// remain uncovered, the implicant covering the most of them. Ties go to the
// lexicographically smallest implicant.
func SelectCovering(primes []qmc.Implicant, terms []uint) []qmc.Implicant {
	candidates := sorted(mapset.NewThreadUnsafeSet(primes...))
	table := NewTable(candidates, terms)
	selected := mapset.NewThreadUnsafeSet(table.Essential()...)

	uncovered := mapset.NewThreadUnsafeSet[uint]()
	for _, term := range terms {
		if !covers(selected.ToSlice(), term) {
			uncovered.Add(term)
		}
	}
	for uncovered.Cardinality() > 0 {
		best, bestCount := -1, 0
		for i, imp := range candidates {
			if selected.Contains(imp) {
				continue
			}
			count := 0
			for j, term := range terms {
				if table.Marks[i][j] && uncovered.Contains(term) {
					count++
				}
			}
			if count > bestCount {
				best, bestCount = i, count
			}
		}
		if best < 0 {
			break
		}
		selected.Add(candidates[best])
		for j, term := range terms {
			if table.Marks[best][j] {
				uncovered.Remove(term)
			}
		}
	}
	return sorted(selected)
}

// Prune drops implicants whose terms are all covered by the rest of the
// selection. Candidates are tried in sorted order, starting over after every
// removal, until nothing can be dropped.
func Prune(selected []qmc.Implicant, terms []uint) []qmc.Implicant {
	current := sorted(mapset.NewThreadUnsafeSet(selected...))
	for removed := true; removed; {
		removed = false
		for i := range current {
			rest := append(append([]qmc.Implicant{}, current[:i]...), current[i+1:]...)
			if Covered(rest, terms) {
				current = rest
				removed = true
				break
			}
		}
	}
	return current
}

// Subsume removes product-of-sums clauses whose literal set contains the
// literal set of another clause. Sum-of-products selections are returned
// unchanged.
func Subsume(selected []qmc.Implicant, names []string, form render.Form) []qmc.Implicant {
	current := sorted(mapset.NewThreadUnsafeSet(selected...))
	if form != render.CNF {
		return current
	}
	sets := make([]mapset.Set[render.Literal], len(current))
	for i, imp := range current {
		sets[i] = mapset.NewThreadUnsafeSet(render.Literals(imp, names, form)...)
	}
	var kept []qmc.Implicant
	for i, imp := range current {
		subsumed := false
		for j := range current {
			if i == j || !sets[j].IsSubset(sets[i]) {
				continue
			}
			// equal sets keep the first one
			if !sets[i].Equal(sets[j]) || j < i {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, imp)
		}
	}
	return kept
}

// Covered reports whether every term is covered by some selected implicant.
func Covered(selected []qmc.Implicant, terms []uint) bool {
	for _, term := range terms {
		if !covers(selected, term) {
			return false
		}
	}
	return true
}

func covers(selected []qmc.Implicant, term uint) bool {
	for _, imp := range selected {
		if imp.Covers(term) {
			return true
		}
	}
	return false
}

func sorted(set mapset.Set[qmc.Implicant]) []qmc.Implicant {
	out := set.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
