package token

type Type int

const (
	EOF Type = iota
	VAR
	TRUE
	FALSE
	NOT
	AND
	OR
	XOR
	IMPLIES
	IFF
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case VAR:
		return "VAR"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case IMPLIES:
		return "IMPLIES"
	case IFF:
		return "IFF"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// IsBinary reports whether the type is one of the binary connectives.
func (t Type) IsBinary() bool {
	switch t {
	case AND, OR, XOR, IMPLIES, IFF:
		return true
	}
	return false
}

// Token represents a lexical token with its type, literal value and rune offset.
type Token struct {
	Type  Type
	Value string
	Pos   int
}
