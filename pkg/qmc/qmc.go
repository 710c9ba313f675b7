package qmc

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

var (
	ErrTermOutOfRange        = errors.New("term out of range")
	ErrEmptyTermSet          = errors.New("empty term set")
	ErrVariableCountMismatch = errors.New("unsupported variable count")
)

// DomainError reports input the engine cannot work on.
type DomainError struct {
	Term     uint
	VarCount int
	Err      error
}

func (e *DomainError) Error() string {
	if e.Err == ErrTermOutOfRange {
		return fmt.Sprintf("%v: %d does not fit into %d variables", e.Err, e.Term, e.VarCount)
	}
	if e.Err == ErrVariableCountMismatch {
		return fmt.Sprintf("%v: %d (must be between 1 and %d)", e.Err, e.VarCount, MaxVariables)
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stage is the state of one merge round: the implicants that entered it,
// grouped by their number of ones.
type Stage struct {
	Round  int
	Groups [][]Implicant
}

// Reduction is the result of running the merge rounds to completion.
type Reduction struct {
	Stages []Stage
	Primes []Implicant
}

func validate(terms []uint, varCount int) error {
	if varCount < 1 || varCount > MaxVariables {
		return &DomainError{VarCount: varCount, Err: ErrVariableCountMismatch}
	}
	if len(terms) == 0 {
		return &DomainError{VarCount: varCount, Err: ErrEmptyTermSet}
	}
	for _, t := range terms {
		if varCount < MaxVariables && t>>uint(varCount) != 0 {
			return &DomainError{Term: t, VarCount: varCount, Err: ErrTermOutOfRange}
		}
	}
	return nil
}

// Reduce runs Quine-McCluskey merge rounds over terms. Each round groups the
// current implicants by population count and tries every pair taken from
// adjacent groups; whatever took part in no merge is prime. Rounds continue
// until one produces no merge.
func Reduce(terms []uint, varCount int) (*Reduction, error) {
	if err := validate(terms, varCount); err != nil {
		return nil, err
	}

	current := mapset.NewThreadUnsafeSet[Implicant]()
	for _, t := range terms {
		current.Add(FromTerm(t, varCount))
	}

	primes := mapset.NewThreadUnsafeSet[Implicant]()
	red := &Reduction{}
	for round := 1; current.Cardinality() > 0; round++ {
		groups := group(current, varCount)
		red.Stages = append(red.Stages, Stage{Round: round, Groups: groups})

		merged := mapset.NewThreadUnsafeSet[Implicant]()
		used := mapset.NewThreadUnsafeSet[Implicant]()
		for k := 0; k+1 < len(groups); k++ {
			for _, a := range groups[k] {
				for _, b := range groups[k+1] {
					if m, ok := Merge(a, b); ok {
						merged.Add(m)
						used.Add(a)
						used.Add(b)
					}
				}
			}
		}
		primes = primes.Union(current.Difference(used))
		current = merged
	}

	red.Primes = sorted(primes)
	return red, nil
}

// PrimeImplicants returns the prime implicants of the function whose ones are
// terms, sorted lexicographically.
func PrimeImplicants(terms []uint, varCount int) ([]Implicant, error) {
	red, err := Reduce(terms, varCount)
	if err != nil {
		return nil, err
	}
	return red.Primes, nil
}

func group(set mapset.Set[Implicant], varCount int) [][]Implicant {
	groups := make([][]Implicant, varCount+1)
	for _, imp := range sorted(set) {
		groups[imp.Ones()] = append(groups[imp.Ones()], imp)
	}
	return groups
}

func sorted(set mapset.Set[Implicant]) []Implicant {
	out := set.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
