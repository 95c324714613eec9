package ast

import "sort"

// Walk visits n in post-order: operands before the node, left before right.
func Walk(n Node, fn func(Node)) {
	switch x := n.(type) {
	case Not:
		Walk(x.Operand, fn)
	case Binary:
		Walk(x.Left, fn)
		Walk(x.Right, fn)
	}
	fn(n)
}

// Variables returns the distinct variable names of n in ascending byte order.
func Variables(n Node) []string {
	seen := make(map[string]struct{})
	Walk(n, func(n Node) {
		if v, ok := n.(Var); ok {
			seen[v.Name] = struct{}{}
		}
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Labeled pairs a node with its canonical rendering.
type Labeled struct {
	Label string
	Node  Node
}

// Subexpressions lists the compound nodes of n in post-order of first
// occurrence, one entry per distinct canonical label. Leaves are skipped.
func Subexpressions(n Node) []Labeled {
	seen := make(map[string]struct{})
	var out []Labeled
	Walk(n, func(n Node) {
		if IsLeaf(n) {
			return
		}
		label := Format(n)
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		out = append(out, Labeled{Label: label, Node: n})
	})
	return out
}
