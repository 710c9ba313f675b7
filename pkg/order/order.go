package order

import (
	"sort"

	"github.com/rmohr/logicmin/pkg/formula"
)

// Column is one truth-table column: a distinct sub-formula of the tree.
type Column struct {
	Label string
	// Node is the first arena index carrying the label.
	Node  int
	Depth int
}

type collector struct {
	tree    *formula.Tree
	columns map[string]*Column
	keys    []string
}

func (c *collector) add(idx int) {
	label := c.tree.LabelOf(idx)
	if _, exists := c.columns[label]; exists {
		return
	}
	c.columns[label] = &Column{Label: label, Node: idx, Depth: c.tree.Depth(idx)}
	c.keys = append(c.keys, label)
}

// visit discovers composites in order: left operand, the node, right operand.
// A negation is listed after its operand.
func (c *collector) visit(idx int) {
	n := c.tree.Node(idx)
	switch n.Op.Arity() {
	case 0:
		return
	case 1:
		c.visit(n.LHS)
		if idx != c.tree.Root() {
			c.add(idx)
		}
	default:
		c.visit(n.LHS)
		if idx != c.tree.Root() {
			c.add(idx)
		}
		c.visit(n.RHS)
	}
}

func (c *collector) traverse() (columns []Column) {
	for _, k := range c.keys {
		columns = append(columns, *c.columns[k])
	}
	sort.SliceStable(columns, func(i, j int) bool { return columns[i].Depth < columns[j].Depth })
	return
}

// Columns orders the sub-formulas of tree for display: variables sorted by
// name, then the composite sub-formulas by depth, then the whole formula.
// Composites of equal depth keep the order in which an in-order walk meets
// them, and a label occurring several times is listed once.
func Columns(tree *formula.Tree) []Column {
	vars := map[string]int{}
	tree.Walk(tree.Root(), func(idx int, n formula.Node) {
		if _, ok := vars[n.Name]; n.Op == formula.OpVar && !ok {
			vars[n.Name] = idx
		}
	})
	var columns []Column
	for _, name := range tree.Variables() {
		columns = append(columns, Column{Label: name, Node: vars[name], Depth: 1})
	}
	if tree.Node(tree.Root()).Op == formula.OpVar {
		return columns
	}

	c := &collector{tree: tree, columns: map[string]*Column{}}
	c.visit(tree.Root())
	columns = append(columns, c.traverse()...)

	root := tree.Root()
	return append(columns, Column{Label: tree.LabelOf(root), Node: root, Depth: tree.Depth(root)})
}
