package rpn

import (
	"github.com/DjordjeVuckovic/in2post/internal/token"
)

// Convert rewrites an infix token sequence into postfix order using the
// shunting-yard algorithm. Operators are binary and left-associative.
//
// Beyond plain shunting-yard it also rejects two operands or groups with no
// operator between them ("3 4", "( 1 ) ( 2 )") and a trailing operator
// ("3 +"), so every accepted sequence of numbers is evaluable.
//
// The returned error is always a *SyntaxError.
func Convert(infix []token.Token) ([]token.Token, error) {
	if len(infix) == 0 {
		return nil, syntaxErr(ErrEmptyExpression, 0, "")
	}

	output := make([]token.Token, 0, len(infix))
	// holds only OPERATOR and LPAREN tokens
	stack := make([]token.Token, 0, len(infix)/2)

	// EOF marks the start of input
	last := token.EOF

	for i, tok := range infix {
		switch tok.Type {
		case token.NUMBER, token.IDENT:
			if last.IsOperand() || last == token.RPAREN {
				return nil, syntaxErr(ErrMissingOperator, i, tok.Value)
			}
			output = append(output, tok)

		case token.OPERATOR:
			if last == token.OPERATOR || last == token.LPAREN || last == token.EOF {
				return nil, syntaxErr(ErrOperatorAdjacency, i, tok.Value)
			}
			prec := Precedence(tok.Value)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != token.OPERATOR || Precedence(top.Value) < prec {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case token.LPAREN:
			if last.IsOperand() || last == token.RPAREN {
				return nil, syntaxErr(ErrMissingOperator, i, tok.Value)
			}
			stack = append(stack, tok)

		case token.RPAREN:
			if last == token.OPERATOR || last == token.LPAREN {
				return nil, syntaxErr(ErrOperatorAdjacency, i, tok.Value)
			}
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == token.LPAREN {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, syntaxErr(ErrMissingLeftParen, i, tok.Value)
			}

		default:
			return nil, syntaxErr(ErrInvalidToken, i, tok.Value)
		}

		last = tok.Type
	}

	if last == token.OPERATOR {
		return nil, syntaxErr(ErrDanglingOperator, len(infix)-1, infix[len(infix)-1].Value)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == token.LPAREN {
			return nil, syntaxErr(ErrMissingRightParen, len(infix), "")
		}
		output = append(output, top)
	}

	return output, nil
}
