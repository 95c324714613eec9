package token

// Tokenizer interface defines the method for tokenizing formula strings.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}
