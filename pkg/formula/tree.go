package formula

import (
	"fmt"
	"sort"
	"strings"
)

// NoChild marks an unused child slot.
const NoChild = -1

// Node is one entry of a Tree arena. Children are referenced by index and
// always precede their parent in the arena.
type Node struct {
	Op   Op
	Name string
	LHS  int
	RHS  int

	label string
}

// Tree is an immutable expression tree stored as an arena.
type Tree struct {
	nodes   []Node
	root    int
	labeled bool
}

// Assignment binds variable names to truth values.
type Assignment map[string]bool

// Builder assembles a Tree bottom-up. Every constructor takes the mandatory
// children of its variant, so half-built binary nodes cannot exist.
type Builder struct {
	nodes []Node
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(n Node) int {
	b.nodes = append(b.nodes, n)
	return len(b.nodes) - 1
}

func (b *Builder) check(idx int) {
	if idx < 0 || idx >= len(b.nodes) {
		panic(fmt.Sprintf("formula: child index %d out of range", idx))
	}
}

func (b *Builder) Var(name string) int {
	return b.add(Node{Op: OpVar, Name: name, LHS: NoChild, RHS: NoChild})
}

func (b *Builder) Not(operand int) int {
	b.check(operand)
	return b.add(Node{Op: OpNot, LHS: operand, RHS: NoChild})
}

func (b *Builder) Binary(op Op, lhs, rhs int) int {
	if op.Arity() != 2 {
		panic(fmt.Sprintf("formula: %s is not a binary operator", op))
	}
	b.check(lhs)
	b.check(rhs)
	return b.add(Node{Op: op, LHS: lhs, RHS: rhs})
}

func (b *Builder) And(lhs, rhs int) int     { return b.Binary(OpAnd, lhs, rhs) }
func (b *Builder) Or(lhs, rhs int) int      { return b.Binary(OpOr, lhs, rhs) }
func (b *Builder) Implies(lhs, rhs int) int { return b.Binary(OpImplies, lhs, rhs) }
func (b *Builder) Equiv(lhs, rhs int) int   { return b.Binary(OpEquiv, lhs, rhs) }

// Build freezes the builder into a labeled Tree rooted at root.
func (b *Builder) Build(root int) *Tree {
	b.check(root)
	t := &Tree{nodes: b.nodes, root: root}
	b.nodes = nil
	t.Label()
	return t
}

func (t *Tree) Root() int {
	return t.root
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Node(idx int) Node {
	return t.nodes[idx]
}

// Label computes the canonical label of every node. Running it again leaves
// every label unchanged.
func (t *Tree) Label() {
	if t.labeled {
		return
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		switch n.Op {
		case OpVar:
			n.label = n.Name
		case OpNot:
			n.label = n.Op.Glyph() + t.operand(n.Op, n.LHS, false)
		default:
			n.label = t.operand(n.Op, n.LHS, false) + n.Op.Glyph() + t.operand(n.Op, n.RHS, true)
		}
	}
	t.labeled = true
}

// operand renders child idx as it appears under parent. A child is wrapped
// when it binds looser than the parent; an equally binding child is wrapped
// only where the parent's associativity would otherwise regroup it.
func (t *Tree) operand(parent Op, idx int, right bool) string {
	child := t.nodes[idx]
	wrap := child.Op.Precedence() < parent.Precedence()
	if child.Op.Precedence() == parent.Precedence() && child.Op.Arity() == 2 {
		wrap = right != parent.RightAssoc()
	}
	if wrap {
		return "(" + child.label + ")"
	}
	return child.label
}

// LabelOf returns the canonical label of node idx.
func (t *Tree) LabelOf(idx int) string {
	return t.nodes[idx].label
}

func (t *Tree) String() string {
	return t.LabelOf(t.root)
}

// Variables returns the distinct variable names, sorted.
func (t *Tree) Variables() []string {
	seen := map[string]bool{}
	var names []string
	for _, n := range t.nodes {
		if n.Op == OpVar && !seen[n.Name] {
			seen[n.Name] = true
			names = append(names, n.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Depth returns the height of the subtree at idx; a variable has depth 1.
func (t *Tree) Depth(idx int) int {
	n := t.nodes[idx]
	switch n.Op.Arity() {
	case 0:
		return 1
	case 1:
		return t.Depth(n.LHS) + 1
	}
	return max(t.Depth(n.LHS), t.Depth(n.RHS)) + 1
}

// Eval evaluates the whole tree.
func (t *Tree) Eval(a Assignment) (bool, error) {
	return t.EvalNode(t.root, a)
}

// EvalNode evaluates the subtree at idx. Both operands of a binary node are
// always evaluated.
func (t *Tree) EvalNode(idx int, a Assignment) (bool, error) {
	n := t.nodes[idx]
	if n.Op == OpVar {
		v, ok := a[n.Name]
		if !ok {
			return false, &EvalError{Name: n.Name, Err: ErrUnboundVariable}
		}
		return v, nil
	}
	lhs, err := t.EvalNode(n.LHS, a)
	if err != nil {
		return false, err
	}
	if n.Op == OpNot {
		return !lhs, nil
	}
	rhs, err := t.EvalNode(n.RHS, a)
	if err != nil {
		return false, err
	}
	switch n.Op {
	case OpAnd:
		return lhs && rhs, nil
	case OpOr:
		return lhs || rhs, nil
	case OpImplies:
		return !lhs || rhs, nil
	case OpEquiv:
		return lhs == rhs, nil
	}
	return false, fmt.Errorf("unknown operator %d", n.Op)
}

// Walk visits every node reachable from idx in post-order.
func (t *Tree) Walk(idx int, visit func(idx int, n Node)) {
	n := t.nodes[idx]
	if n.LHS != NoChild {
		t.Walk(n.LHS, visit)
	}
	if n.RHS != NoChild {
		t.Walk(n.RHS, visit)
	}
	visit(idx, n)
}

// Prefix renders the tree in a fully parenthesized prefix form, handy in test
// failures.
func (t *Tree) Prefix() string {
	var sb strings.Builder
	var rec func(idx int)
	rec = func(idx int) {
		n := t.nodes[idx]
		if n.Op == OpVar {
			sb.WriteString(n.Name)
			return
		}
		sb.WriteString(n.Op.String())
		sb.WriteByte('(')
		rec(n.LHS)
		if n.RHS != NoChild {
			sb.WriteString(", ")
			rec(n.RHS)
		}
		sb.WriteByte(')')
	}
	rec(t.root)
	return sb.String()
}
