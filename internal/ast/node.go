// Package ast holds the immutable syntax tree of a propositional formula and
// the pure operations on it: canonical printing, evaluation and traversal.
package ast

// Node is a closed sum type; the only implementations are Var, Const, Not and Binary.
type Node interface {
	node()
}

type Var struct {
	Name string
}

type Const struct {
	Value bool
}

type Not struct {
	Operand Node
}

type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

func (Var) node()    {}
func (Const) node()  {}
func (Not) node()    {}
func (Binary) node() {}

func NewVar(name string) Var {
	return Var{Name: name}
}

func NewConst(v bool) Const {
	return Const{Value: v}
}

func NewNot(operand Node) Not {
	return Not{Operand: operand}
}

func NewBinary(op Op, left, right Node) Binary {
	return Binary{Op: op, Left: left, Right: right}
}

func And(l, r Node) Binary     { return NewBinary(OpAnd, l, r) }
func Or(l, r Node) Binary      { return NewBinary(OpOr, l, r) }
func Xor(l, r Node) Binary     { return NewBinary(OpXor, l, r) }
func Implies(l, r Node) Binary { return NewBinary(OpImplies, l, r) }
func Iff(l, r Node) Binary     { return NewBinary(OpIff, l, r) }

// IsLeaf reports whether n is a variable or a constant.
func IsLeaf(n Node) bool {
	switch n.(type) {
	case Var, Const:
		return true
	}
	return false
}

// Equal compares two trees structurally.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Const:
		y, ok := b.(Const)
		return ok && x.Value == y.Value
	case Not:
		y, ok := b.(Not)
		return ok && Equal(x.Operand, y.Operand)
	case Binary:
		y, ok := b.(Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

// Size returns the number of nodes in the tree.
func Size(n Node) int {
	switch x := n.(type) {
	case Not:
		return 1 + Size(x.Operand)
	case Binary:
		return 1 + Size(x.Left) + Size(x.Right)
	default:
		return 1
	}
}
