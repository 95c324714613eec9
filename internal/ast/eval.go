package ast

import (
	"fmt"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
)

// Assignment maps every variable of a formula to a truth value.
type Assignment map[string]bool

// Evaluate computes the truth value of n under a. A variable missing from a
// yields an *apperr.UndefinedVariableError.
func Evaluate(n Node, a Assignment) (bool, error) {
	switch x := n.(type) {
	case Var:
		v, ok := a[x.Name]
		if !ok {
			return false, &apperr.UndefinedVariableError{Name: x.Name}
		}
		return v, nil
	case Const:
		return x.Value, nil
	case Not:
		v, err := Evaluate(x.Operand, a)
		if err != nil {
			return false, err
		}
		return !v, nil
	case Binary:
		l, err := Evaluate(x.Left, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(x.Right, a)
		if err != nil {
			return false, err
		}
		return x.Op.Apply(l, r), nil
	default:
		panic(fmt.Sprintf("ast: cannot evaluate node of type %T", n))
	}
}
