package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/rmohr/logicmin/pkg/api"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Encode writes v in a machine readable format.
func Encode(w io.Writer, v interface{}, format string) error {
	var data []byte
	var err error
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(v)
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "\t")
		data = append(data, '\n')
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func render(table *tablewriter.Table, rows [][]string) error {
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// TruthTable prints one column per sub-formula.
func TruthTable(w io.Writer, c *api.Compilation) error {
	table := tablewriter.NewWriter(w)
	table.Header(append([]string{"#"}, c.Columns...))
	var rows [][]string
	for i, r := range c.Rows {
		row := []string{strconv.Itoa(i)}
		for _, v := range r.Columns {
			row = append(row, bit(v))
		}
		rows = append(rows, row)
	}
	return render(table, rows)
}

// Stages prints the groups every merge round started from.
func Stages(w io.Writer, m api.Minimization) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Round", "Ones", "Implicants"})
	var rows [][]string
	for _, s := range m.Stages {
		for ones, group := range s.Groups {
			if len(group) == 0 {
				continue
			}
			rows = append(rows, []string{strconv.Itoa(s.Round), strconv.Itoa(ones), strings.Join(group, " ")})
		}
	}
	return render(table, rows)
}

// Coverage prints the prime implicant chart with X marking a covered term.
func Coverage(w io.Writer, m api.Minimization) error {
	table := tablewriter.NewWriter(w)
	header := []string{"Implicant"}
	for _, t := range m.Coverage.Terms {
		header = append(header, strconv.FormatUint(uint64(t), 10))
	}
	table.Header(header)
	var rows [][]string
	for i, imp := range m.Coverage.Implicants {
		row := []string{imp}
		for _, mark := range m.Coverage.Marks[i] {
			if mark {
				row = append(row, "X")
			} else {
				row = append(row, ".")
			}
		}
		rows = append(rows, row)
	}
	return render(table, rows)
}

// Karnaugh prints the Gray-ordered map.
func Karnaugh(w io.Writer, k api.Karnaugh) error {
	table := tablewriter.NewWriter(w)
	corner := strings.Join(k.RowVariables, "") + "\\" + strings.Join(k.ColVariables, "")
	table.Header(append([]string{corner}, k.ColLabels...))
	var rows [][]string
	for r, cells := range k.Cells {
		row := []string{k.RowLabels[r]}
		for _, v := range cells {
			row = append(row, bit(v))
		}
		rows = append(rows, row)
	}
	return render(table, rows)
}

// Minimization prints the full derivation of one normal form.
func Minimization(w io.Writer, m api.Minimization) error {
	title := strings.ToUpper(m.Form)
	if len(m.Stages) > 0 {
		fmt.Fprintf(w, "\n%s merge rounds:\n", title)
		if err := Stages(w, m); err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s coverage (essential: %s):\n", title, strings.Join(m.Essential, " "))
		if err := Coverage(w, m); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "\n%s Karnaugh map (groups: %s):\n", title, strings.Join(m.Karnaugh.Groups, " "))
	if err := Karnaugh(w, m.Karnaugh); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s calculation method: %s\n", title, m.Expression)
	fmt.Fprintf(w, "%s tabular method:     %s\n", title, m.Expression)
	fmt.Fprintf(w, "%s Karnaugh method:    %s\n", title, m.Karnaugh.Expression)
	return nil
}

// Summary prints the headline results of a compilation.
func Summary(w io.Writer, c *api.Compilation) {
	fmt.Fprintf(w, "Formula:       %s\n", c.Formula)
	fmt.Fprintf(w, "Variables:     %s\n", strings.Join(c.Variables, ", "))
	fmt.Fprintf(w, "Minterms:      %v\n", c.Minterms)
	fmt.Fprintf(w, "Maxterms:      %v\n", c.Maxterms)
	fmt.Fprintf(w, "Canonical DNF: %s\n", c.CanonicalDNF)
	fmt.Fprintf(w, "Canonical CNF: %s\n", c.CanonicalCNF)
	fmt.Fprintf(w, "Index:         %s (%s)\n", c.IndexValue, c.IndexBits)
	fmt.Fprintf(w, "Minimal DNF:   %s\n", c.DNF.Expression)
	fmt.Fprintf(w, "Minimal CNF:   %s\n", c.CNF.Expression)
}

// Checks prints the verdict of every equivalence backend.
func Checks(w io.Writer, checks []api.Check) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Backend", "Form", "Equivalent", "Counterexample"})
	var rows [][]string
	for _, c := range checks {
		var ce []string
		for _, v := range sortedKeys(c.Counterexample) {
			ce = append(ce, v+"="+bit(c.Counterexample[v]))
		}
		rows = append(rows, []string{c.Backend, c.Form, strconv.FormatBool(c.Equivalent), strings.Join(ce, " ")})
	}
	return render(table, rows)
}

// Compilation prints everything: summary, truth table, both derivations and
// any equivalence checks.
func Compilation(w io.Writer, c *api.Compilation) error {
	Summary(w, c)
	fmt.Fprintln(w)
	if err := TruthTable(w, c); err != nil {
		return err
	}
	for _, m := range []api.Minimization{c.DNF, c.CNF} {
		if err := Minimization(w, m); err != nil {
			return err
		}
	}
	if len(c.Checks) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	return Checks(w, c.Checks)
}
