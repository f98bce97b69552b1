package rpn

import (
	"github.com/DjordjeVuckovic/in2post/internal/token"
)

var tokenizer = token.NewWhitespaceTokenizer()

// ConvertString converts a whitespace separated infix expression and returns
// the postfix form joined by single spaces.
func ConvertString(infix string) (string, error) {
	postfix, err := Convert(tokenizer.Tokenize(infix))
	if err != nil {
		return "", err
	}
	return token.Join(postfix), nil
}

// EvaluateString evaluates a whitespace separated postfix expression.
func EvaluateString(postfix string) (float64, error) {
	return Evaluate(tokenizer.Tokenize(postfix))
}
