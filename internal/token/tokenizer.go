package token

import "strings"

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) []Token
}

// WhitespaceTokenizer splits input on whitespace and classifies every field.
// Glued tokens such as "3+4" are not split and classify as INVALID.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `3 + 4 * ( 2 - 1 )`
func (t *WhitespaceTokenizer) Tokenize(input string) []Token {
	return FromValues(strings.Fields(input))
}

// FromValues classifies already split fields.
func FromValues(values []string) []Token {
	tokens := make([]Token, 0, len(values))
	for _, v := range values {
		tokens = append(tokens, New(v))
	}
	return tokens
}

// Values returns the literal values of tokens.
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return values
}

// Join renders tokens as a single space separated string.
func Join(tokens []Token) string {
	return strings.Join(Values(tokens), " ")
}
