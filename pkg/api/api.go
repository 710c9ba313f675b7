package api

const (
	FormDNF = "dnf"
	FormCNF = "cnf"
)

// Compilation is everything the compiler derives from one formula.
type Compilation struct {
	Formula   string     `json:"formula"`
	Variables []string   `json:"variables"`
	Columns   []string   `json:"columns"`
	Rows      []TruthRow `json:"rows,omitempty"`
	Minterms  []uint     `json:"minterms"`
	Maxterms  []uint     `json:"maxterms"`
	// IndexValue is the result column read as a binary number, in decimal.
	IndexValue string `json:"indexValue"`
	IndexBits  string `json:"indexBits"`

	CanonicalDNF string `json:"canonicalDNF"`
	CanonicalCNF string `json:"canonicalCNF"`

	DNF Minimization `json:"dnf"`
	CNF Minimization `json:"cnf"`

	Checks []Check `json:"checks,omitempty"`
}

type TruthRow struct {
	Bits    []bool `json:"bits"`
	Value   bool   `json:"value"`
	Columns []bool `json:"columns"`
}

// Minimization is the reduction of one normal form by the tabular engine and
// by the Karnaugh map.
type Minimization struct {
	Form       string   `json:"form"`
	Terms      []uint   `json:"terms"`
	Stages     []Stage  `json:"stages,omitempty"`
	Primes     []string `json:"primes,omitempty"`
	Coverage   Coverage `json:"coverage"`
	Essential  []string `json:"essential,omitempty"`
	Implicants []string `json:"implicants,omitempty"`
	Clauses    []string `json:"clauses,omitempty"`
	Expression string   `json:"expression"`
	Karnaugh   Karnaugh `json:"karnaugh"`
}

type Stage struct {
	Round  int        `json:"round"`
	Groups [][]string `json:"groups"`
}

type Coverage struct {
	Implicants []string `json:"implicants"`
	Terms      []uint   `json:"terms"`
	Marks      [][]bool `json:"marks"`
}

type Karnaugh struct {
	RowVariables []string `json:"rowVariables"`
	ColVariables []string `json:"colVariables"`
	RowLabels    []string `json:"rowLabels"`
	ColLabels    []string `json:"colLabels"`
	Cells        [][]bool `json:"cells"`
	Groups       []string `json:"groups,omitempty"`
	Implicants   []string `json:"implicants,omitempty"`
	Expression   string   `json:"expression"`
}

type Check struct {
	Backend        string          `json:"backend"`
	Form           string          `json:"form"`
	Equivalent     bool            `json:"equivalent"`
	Counterexample map[string]bool `json:"counterexample,omitempty"`
}
