package ast

import "fmt"

// Op is a binary connective.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpXor
	OpImplies
	OpIff
)

// Binding strength, tightest first. IMPLIES and IFF share the lowest tier.
const (
	PrecIff     = 1
	PrecImplies = 1
	PrecXor     = 2
	PrecOr      = 3
	PrecAnd     = 4
	PrecNot     = 5
)

func (o Op) String() string {
	switch o {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpXor:
		return "XOR"
	case OpImplies:
		return "IMPLIES"
	case OpIff:
		return "IFF"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Symbol returns the canonical symbol used by Format.
func (o Op) Symbol() string {
	switch o {
	case OpAnd:
		return "∧"
	case OpOr:
		return "∨"
	case OpXor:
		return "⊕"
	case OpImplies:
		return "→"
	case OpIff:
		return "↔"
	default:
		panic(fmt.Sprintf("ast: unknown operator %d", int(o)))
	}
}

func (o Op) Precedence() int {
	switch o {
	case OpAnd:
		return PrecAnd
	case OpOr:
		return PrecOr
	case OpXor:
		return PrecXor
	case OpImplies:
		return PrecImplies
	case OpIff:
		return PrecIff
	default:
		panic(fmt.Sprintf("ast: unknown operator %d", int(o)))
	}
}

// RightAssoc reports whether a chain of o groups to the right: A → B → C is A → (B → C).
func (o Op) RightAssoc() bool {
	return o == OpImplies || o == OpIff
}

// Apply computes the connective on two truth values.
func (o Op) Apply(l, r bool) bool {
	switch o {
	case OpAnd:
		return l && r
	case OpOr:
		return l || r
	case OpXor:
		return l != r
	case OpImplies:
		return !l || r
	case OpIff:
		return l == r
	default:
		panic(fmt.Sprintf("ast: unknown operator %d", int(o)))
	}
}

const (
	SymbolNot   = "¬"
	SymbolTrue  = "⊤"
	SymbolFalse = "⊥"
)
