package ast

import (
	"fmt"
	"strings"
)

// Format renders n with canonical symbols and only the parentheses that
// precedence requires. The result is the dedup key for sub-expressions.
func Format(n Node) string {
	var b strings.Builder
	format(&b, n, 0, false)
	return b.String()
}

// format writes n under a parent of precedence parent (0 at the root).
// assocLeft is set for the left operand of a right-associative parent.
func format(b *strings.Builder, n Node, parent int, assocLeft bool) {
	switch x := n.(type) {
	case Var:
		b.WriteString(x.Name)
	case Const:
		if x.Value {
			b.WriteString(SymbolTrue)
		} else {
			b.WriteString(SymbolFalse)
		}
	case Not:
		b.WriteString(SymbolNot)
		format(b, x.Operand, PrecNot, false)
	case Binary:
		prec := x.Op.Precedence()
		wrap := parent > prec || (assocLeft && parent == prec)
		if wrap {
			b.WriteByte('(')
		}
		format(b, x.Left, prec, x.Op.RightAssoc())
		b.WriteByte(' ')
		b.WriteString(x.Op.Symbol())
		b.WriteByte(' ')
		format(b, x.Right, prec, false)
		if wrap {
			b.WriteByte(')')
		}
	default:
		panic(fmt.Sprintf("ast: cannot format node of type %T", n))
	}
}
