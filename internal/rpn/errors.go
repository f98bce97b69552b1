package rpn

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyExpression   = errors.New("empty expression")
	ErrInvalidToken      = errors.New("invalid token")
	ErrOperatorAdjacency = errors.New("operator can't follow another operator or left parenthesis")
	ErrMissingOperator   = errors.New("missing operator between operands")
	ErrDanglingOperator  = errors.New("expression can't end with an operator")
	ErrMissingLeftParen  = errors.New("mismatched parentheses - missing '('")
	ErrMissingRightParen = errors.New("mismatched parentheses - missing ')'")

	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrNonFinite            = errors.New("result is not a finite number")
	ErrInvalidOperator      = errors.New("invalid operator")
	ErrMalformedPostfix     = errors.New("malformed postfix expression")
)

// SyntaxError reports an infix expression the converter rejected.
// Pos is the index of the offending token, or the token count when the
// problem is only detected at the end of input.
type SyntaxError struct {
	Pos   int
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	return describe(e.Err, e.Pos, e.Token)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// EvalError reports a postfix expression that could not be evaluated.
type EvalError struct {
	Pos   int
	Token string
	Err   error
}

func (e *EvalError) Error() string {
	return describe(e.Err, e.Pos, e.Token)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func describe(err error, pos int, tok string) string {
	if tok == "" {
		return err.Error()
	}
	return fmt.Sprintf("%s: '%s' at position %d", err.Error(), tok, pos+1)
}

func syntaxErr(err error, pos int, tok string) *SyntaxError {
	return &SyntaxError{Pos: pos, Token: tok, Err: err}
}

func evalErr(err error, pos int, tok string) *EvalError {
	return &EvalError{Pos: pos, Token: tok, Err: err}
}
