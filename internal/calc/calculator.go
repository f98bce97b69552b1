package calc

import (
	"strings"

	"github.com/DjordjeVuckovic/in2post/internal/apperr"
	"github.com/DjordjeVuckovic/in2post/internal/rpn"
	"github.com/DjordjeVuckovic/in2post/internal/token"
)

// Conversion is the outcome of the infix to postfix stage.
type Conversion struct {
	Expression string
	Tokens     []token.Token
	Postfix    []token.Token
}

func (c *Conversion) PostfixString() string {
	return token.Join(c.Postfix)
}

// Result is the outcome of a full conversion and evaluation.
type Result struct {
	Expression string
	Postfix    string
	Value      float64
}

func (r *Result) FormatValue() string {
	return token.FormatNumber(r.Value)
}

// Calculator runs input lines through the converter and evaluator.
// It keeps no state between calls and is safe for concurrent use.
type Calculator struct {
	tokenizer token.Tokenizer
}

type Option func(*Calculator)

func WithTokenizer(t token.Tokenizer) Option {
	return func(c *Calculator) {
		c.tokenizer = t
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{tokenizer: token.NewWhitespaceTokenizer()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert tokenizes an infix expression and rewrites it into postfix order.
func (c *Calculator) Convert(expression string) (*Conversion, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, apperr.NewValidation("empty input")
	}

	tokens := c.tokenizer.Tokenize(expression)
	postfix, err := rpn.Convert(tokens)
	if err != nil {
		return nil, err
	}

	return &Conversion{
		Expression: expression,
		Tokens:     tokens,
		Postfix:    postfix,
	}, nil
}

// Evaluate computes the value of an already converted postfix expression.
func (c *Calculator) Evaluate(postfix string) (*Result, error) {
	if strings.TrimSpace(postfix) == "" {
		return nil, apperr.NewValidation("empty input")
	}

	tokens := c.tokenizer.Tokenize(postfix)
	v, err := rpn.Evaluate(tokens)
	if err != nil {
		return nil, err
	}

	return &Result{Postfix: token.Join(tokens), Value: v}, nil
}

// Calculate converts and evaluates an infix expression. A conversion error
// stops the pipeline before anything is evaluated.
func (c *Calculator) Calculate(expression string) (*Result, error) {
	conv, err := c.Convert(expression)
	if err != nil {
		return nil, err
	}

	v, err := rpn.Evaluate(conv.Postfix)
	if err != nil {
		return nil, err
	}

	return &Result{
		Expression: expression,
		Postfix:    conv.PostfixString(),
		Value:      v,
	}, nil
}
