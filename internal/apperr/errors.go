package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a user-input failure of the formula engine.
type Kind int

const (
	KindUnknown Kind = iota
	EmptyFormula
	UnrecognizedToken
	IncompleteFormula
	UnmatchedParenthesis
	InvalidExpression
	TrailingTokens
	UndefinedVariable
	TooManyVariables
)

func (k Kind) String() string {
	switch k {
	case EmptyFormula:
		return "EmptyFormula"
	case UnrecognizedToken:
		return "UnrecognizedToken"
	case IncompleteFormula:
		return "IncompleteFormula"
	case UnmatchedParenthesis:
		return "UnmatchedParenthesis"
	case InvalidExpression:
		return "InvalidExpression"
	case TrailingTokens:
		return "TrailingTokens"
	case UndefinedVariable:
		return "UndefinedVariable"
	case TooManyVariables:
		return "TooManyVariables"
	default:
		return "Unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k := EmptyFormula; k <= TooManyVariables; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KindUnknown, false
}

// UserError is implemented by every error caused by the formula a user supplied.
// Retrying with the same input can never succeed.
type UserError interface {
	error
	ErrKind() Kind
}

// SyntaxError is returned by the tokenizer and the parser.
type SyntaxError struct {
	Kind    Kind
	Message string
	// Snippet is the offending input, at most snippetLen runes.
	Snippet string
	// Pos is the rune offset in the formula, -1 when unknown.
	Pos int
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func (e *SyntaxError) ErrKind() Kind {
	return e.Kind
}

const snippetLen = 10

// Snippet cuts the input at pos down to the length used in diagnostics.
func Snippet(input []rune, pos int) string {
	if pos < 0 || pos >= len(input) {
		return ""
	}
	end := min(pos+snippetLen, len(input))
	return string(input[pos:end])
}

func NewEmptyFormula() *SyntaxError {
	return &SyntaxError{Kind: EmptyFormula, Message: "formula is empty", Pos: -1}
}

func NewUnrecognizedToken(snippet string, pos int) *SyntaxError {
	return &SyntaxError{
		Kind:    UnrecognizedToken,
		Message: fmt.Sprintf("unrecognized token at position %d near %q", pos, snippet),
		Snippet: snippet,
		Pos:     pos,
	}
}

func NewIncompleteFormula(pos int) *SyntaxError {
	return &SyntaxError{
		Kind:    IncompleteFormula,
		Message: "incomplete formula: expected a variable, a constant or '('",
		Pos:     pos,
	}
}

func NewUnmatchedParenthesis(pos int) *SyntaxError {
	return &SyntaxError{
		Kind:    UnmatchedParenthesis,
		Message: fmt.Sprintf("unmatched parenthesis: '(' at position %d is never closed", pos),
		Snippet: "(",
		Pos:     pos,
	}
}

func NewInvalidExpression(value string, pos int) *SyntaxError {
	return &SyntaxError{
		Kind:    InvalidExpression,
		Message: fmt.Sprintf("invalid expression: unexpected %q at position %d", value, pos),
		Snippet: value,
		Pos:     pos,
	}
}

func NewTrailingTokens(value string, pos int) *SyntaxError {
	return &SyntaxError{
		Kind:    TrailingTokens,
		Message: fmt.Sprintf("unexpected %q at position %d after a complete expression", value, pos),
		Snippet: value,
		Pos:     pos,
	}
}

// UndefinedVariableError is returned when an assignment has no value for a variable.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

func (e *UndefinedVariableError) ErrKind() Kind {
	return UndefinedVariable
}

// LimitError reports a formula with more distinct variables than allowed.
type LimitError struct {
	Variables int
	Max       int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("formula has %d variables, at most %d are allowed", e.Variables, e.Max)
}

func (e *LimitError) ErrKind() Kind {
	return TooManyVariables
}

// IsUserError reports whether err (or anything it wraps) is caused by user input.
func IsUserError(err error) bool {
	var ue UserError
	return errors.As(err, &ue)
}

// KindOf returns the Kind of the first user error in the chain.
func KindOf(err error) Kind {
	var ue UserError
	if errors.As(err, &ue) {
		return ue.ErrKind()
	}
	return KindUnknown
}

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
