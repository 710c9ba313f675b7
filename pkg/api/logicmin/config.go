package logicmin

// Config holds the defaults the command line falls back to.
type Config struct {
	AllowUppercase bool     `json:"allowUppercase,omitempty"`
	MaxVariables   int      `json:"maxVariables,omitempty"`
	Backends       []string `json:"backends,omitempty"`
	Output         string   `json:"output,omitempty"`
}

// Suite is a list of formulas together with what they must compile to.
type Suite struct {
	Name           string `json:"name"`
	AllowUppercase bool   `json:"allowUppercase,omitempty"`
	Cases          []Case `json:"cases"`
}

// Case is one formula of a suite. Empty expectations are not checked.
type Case struct {
	Name     string `json:"name,omitempty"`
	Formula  string `json:"formula"`
	Minterms []uint `json:"minterms,omitempty"`
	DNF      string `json:"dnf,omitempty"`
	CNF      string `json:"cnf,omitempty"`
	// Error is a substring of the error the formula must fail with.
	Error string `json:"error,omitempty"`
}
