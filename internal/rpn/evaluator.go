package rpn

import (
	"github.com/DjordjeVuckovic/in2post/internal/token"
)

// Evaluate runs a postfix token sequence on an operand stack and returns the
// single value left on it.
//
// The returned error is always an *EvalError. Identifiers have no bound value
// and are rejected as invalid tokens.
func Evaluate(postfix []token.Token) (float64, error) {
	stack := make([]float64, 0, len(postfix)/2+1)

	for i, tok := range postfix {
		switch tok.Type {
		case token.NUMBER:
			v, err := token.ParseNumber(tok.Value)
			if err != nil {
				return 0, evalErr(ErrInvalidToken, i, tok.Value)
			}
			stack = append(stack, v)

		case token.OPERATOR:
			if len(stack) < 2 {
				return 0, evalErr(ErrInsufficientOperands, i, tok.Value)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := Apply(a, b, tok.Value)
			if err != nil {
				return 0, evalErr(err, i, tok.Value)
			}
			stack = append(stack, v)

		default:
			return 0, evalErr(ErrInvalidToken, i, tok.Value)
		}
	}

	if len(stack) != 1 {
		return 0, evalErr(ErrMalformedPostfix, len(postfix), "")
	}

	return stack[0], nil
}
