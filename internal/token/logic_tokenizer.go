package token

import (
	"unicode"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
)

type pattern struct {
	lit []rune
	typ Type
	// fold matches the literal case-insensitively.
	fold bool
	// word rejects a match that is followed by an identifier character.
	word bool
}

func sym(lit string, typ Type) pattern {
	return pattern{lit: []rune(lit), typ: typ}
}

func kw(lit string, typ Type) pattern {
	return pattern{lit: []rune(lit), typ: typ, fold: true, word: true}
}

func bounded(lit string, typ Type) pattern {
	return pattern{lit: []rune(lit), typ: typ, word: true}
}

// patterns are tried in order; longer symbols come before their prefixes.
var patterns = []pattern{
	sym("<=>", IFF), sym("<->", IFF), sym("↔", IFF), sym("⟷", IFF),
	sym("->", IMPLIES), sym("=>", IMPLIES), sym("→", IMPLIES),
	sym(`/\`, AND), sym("&&", AND), sym("&", AND), sym("∧", AND),
	sym(`\/`, OR), sym("||", OR), sym("∨", OR),
	kw("xor", XOR), sym("⊕", XOR), sym("^", XOR),
	sym("!", NOT), sym("~", NOT), sym("¬", NOT),
	kw("and", AND), kw("or", OR), kw("not", NOT),
	sym("(", LPAREN), sym(")", RPAREN),
	bounded("⊤", TRUE), bounded("T", TRUE),
	bounded("⊥", FALSE), bounded("F", FALSE),
}

// LogicTokenizer splits propositional formulas written in ASCII, symbolic or
// word notation. It holds no state and is safe for concurrent use.
type LogicTokenizer struct{}

func NewLogicTokenizer() *LogicTokenizer {
	return &LogicTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens terminated by EOF.
// Example: Input: `(p && q) -> ¬r`
func (t *LogicTokenizer) Tokenize(input string) ([]Token, error) {
	s := &scanner{input: []rune(input)}

	var tokens []Token

	s.skipWhitespace()
	for s.pos < len(s.input) {
		tok, ok := s.next()
		if !ok {
			return nil, apperr.NewUnrecognizedToken(apperr.Snippet(s.input, s.pos), s.pos)
		}
		tokens = append(tokens, tok)
		s.skipWhitespace()
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(s.input)})
	return tokens, nil
}

type scanner struct {
	input []rune
	pos   int
}

func (s *scanner) next() (Token, bool) {
	for _, p := range patterns {
		if s.match(p) {
			tok := Token{Type: p.typ, Value: string(s.input[s.pos : s.pos+len(p.lit)]), Pos: s.pos}
			s.pos += len(p.lit)
			return tok, true
		}
	}

	if isIdentStart(s.input[s.pos]) {
		return s.readIdent(), true
	}

	return Token{}, false
}

func (s *scanner) match(p pattern) bool {
	end := s.pos + len(p.lit)
	if end > len(s.input) {
		return false
	}
	for i, r := range p.lit {
		c := s.input[s.pos+i]
		if p.fold {
			c = unicode.ToLower(c)
		}
		if c != r {
			return false
		}
	}
	if p.word && end < len(s.input) && isIdentChar(s.input[end]) {
		return false
	}
	return true
}

func (s *scanner) readIdent() Token {
	start := s.pos
	for s.pos < len(s.input) && isIdentChar(s.input[s.pos]) {
		s.pos++
	}
	return Token{Type: VAR, Value: string(s.input[start:s.pos]), Pos: start}
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.input) && unicode.IsSpace(s.input[s.pos]) {
		s.pos++
	}
}

func isIdentStart(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || ('0' <= ch && ch <= '9') || ch == '_'
}
