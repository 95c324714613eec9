package parser

import (
	"fmt"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/ast"
	"github.com/DjordjeVuckovic/truth-table/internal/token"
)

// Parser builds an ast.Node from a formula using precedence climbing.
// It keeps no per-call state and is safe for concurrent use.
type Parser struct {
	tokenizer token.Tokenizer
}

func NewParser() *Parser {
	return &Parser{
		tokenizer: token.NewLogicTokenizer(),
	}
}

// Parse tokenizes and parses a formula. Errors are *apperr.SyntaxError.
func (p *Parser) Parse(formula string) (ast.Node, error) {
	tokens, err := p.tokenizer.Tokenize(formula)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a complete token stream; dangling tokens are an error.
func ParseTokens(tokens []token.Token) (ast.Node, error) {
	s := &state{tokens: tokens}

	n, err := s.parseExpr(0)
	if err != nil {
		return nil, err
	}

	if tok := s.peek(); tok.Type != token.EOF {
		return nil, apperr.NewTrailingTokens(tok.Value, tok.Pos)
	}
	return n, nil
}

type state struct {
	tokens []token.Token
	pos    int
}

func (s *state) peek() token.Token {
	if s.pos >= len(s.tokens) {
		end := 0
		if len(s.tokens) > 0 {
			end = s.tokens[len(s.tokens)-1].Pos
		}
		return token.Token{Type: token.EOF, Pos: end}
	}
	return s.tokens[s.pos]
}

func (s *state) advance() token.Token {
	tok := s.peek()
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return tok
}

// parseExpr parses a primary followed by every binary operator binding at
// least as tight as minPrec.
func (s *state) parseExpr(minPrec int) (ast.Node, error) {
	left, err := s.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok := s.peek()
		if !tok.Type.IsBinary() {
			return left, nil
		}

		op := binaryOp(tok.Type)
		prec := op.Precedence()
		if prec < minPrec {
			return left, nil
		}
		s.advance()

		next := prec + 1
		if op.RightAssoc() {
			next = prec
		}

		right, err := s.parseExpr(next)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(op, left, right)
	}
}

func (s *state) parsePrimary() (ast.Node, error) {
	tok := s.peek()

	switch tok.Type {
	case token.EOF:
		return nil, apperr.NewIncompleteFormula(tok.Pos)
	case token.LPAREN:
		s.advance()
		inner, err := s.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if s.peek().Type != token.RPAREN {
			return nil, apperr.NewUnmatchedParenthesis(tok.Pos)
		}
		s.advance()
		return inner, nil
	case token.VAR:
		s.advance()
		return ast.NewVar(tok.Value), nil
	case token.TRUE:
		s.advance()
		return ast.NewConst(true), nil
	case token.FALSE:
		s.advance()
		return ast.NewConst(false), nil
	case token.NOT:
		s.advance()
		operand, err := s.parsePrimary()
		if err != nil {
			return nil, err
		}
		return ast.NewNot(operand), nil
	default:
		return nil, apperr.NewInvalidExpression(tok.Value, tok.Pos)
	}
}

func binaryOp(t token.Type) ast.Op {
	switch t {
	case token.AND:
		return ast.OpAnd
	case token.OR:
		return ast.OpOr
	case token.XOR:
		return ast.OpXor
	case token.IMPLIES:
		return ast.OpImplies
	case token.IFF:
		return ast.OpIff
	default:
		panic(fmt.Sprintf("parser: %s is not a binary connective", t))
	}
}
