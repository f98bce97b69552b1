package calc

import (
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/in2post/internal/apperr"
	"github.com/DjordjeVuckovic/in2post/internal/rpn"
	"github.com/DjordjeVuckovic/in2post/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Calculate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPostfix string
		wantValue   string
	}{
		{"left associativity", "3 - 2 - 1", "3 2 - 1 -", "0"},
		{"precedence", "2 + 3 * 4", "2 3 4 * +", "14"},
		{"parenthesis override", "( 2 + 3 ) * 4", "2 3 + 4 *", "20"},
		{"fractional result", "7 / 2", "7 2 /", "3.5"},
		{"example from prompt", "3 + 4 * ( 2 - 1 )", "3 4 2 1 - * +", "7"},
		{"extra whitespace", "  1   +   1 ", "1 1 +", "2"},
	}

	c := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Calculate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPostfix, res.Postfix)
			assert.Equal(t, tt.wantValue, res.FormatValue())
			assert.Equal(t, tt.input, res.Expression)
		})
	}
}

func TestCalculator_Calculate_Errors(t *testing.T) {
	c := New()

	t.Run("empty input", func(t *testing.T) {
		_, err := c.Calculate("   ")
		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "empty input", ve.Message)
	})

	t.Run("division by zero converts then fails", func(t *testing.T) {
		conv, err := c.Convert("4 / 0")
		require.NoError(t, err)
		assert.Equal(t, "4 0 /", conv.PostfixString())

		_, err = c.Calculate("4 / 0")
		assert.ErrorIs(t, err, rpn.ErrDivisionByZero)
	})

	t.Run("identifier converts then fails", func(t *testing.T) {
		conv, err := c.Convert("a + 3")
		require.NoError(t, err)
		assert.Equal(t, "a 3 +", conv.PostfixString())

		_, err = c.Calculate("a + 3")
		var ee *rpn.EvalError
		require.True(t, errors.As(err, &ee))
		assert.ErrorIs(t, err, rpn.ErrInvalidToken)
	})

	t.Run("syntax errors stop before evaluation", func(t *testing.T) {
		_, err := c.Calculate("+ 3 4")
		var se *rpn.SyntaxError
		require.True(t, errors.As(err, &se))
		assert.ErrorIs(t, err, rpn.ErrOperatorAdjacency)

		_, err = c.Calculate("( 3 + 4")
		assert.ErrorIs(t, err, rpn.ErrMissingRightParen)

		_, err = c.Calculate("3 @ 4")
		assert.ErrorIs(t, err, rpn.ErrInvalidToken)
	})
}

func TestCalculator_Evaluate(t *testing.T) {
	c := New()

	res, err := c.Evaluate("3  4 +")
	require.NoError(t, err)
	assert.Equal(t, "3 4 +", res.Postfix)
	assert.Equal(t, 7.0, res.Value)

	_, err = c.Evaluate("3 4")
	assert.ErrorIs(t, err, rpn.ErrMalformedPostfix)

	_, err = c.Evaluate("")
	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}

type singleFieldTokenizer struct{}

func (singleFieldTokenizer) Tokenize(input string) []token.Token {
	return token.FromValues([]string{input})
}

func TestCalculator_WithTokenizer(t *testing.T) {
	c := New(WithTokenizer(singleFieldTokenizer{}))

	res, err := c.Calculate("12")
	require.NoError(t, err)
	assert.Equal(t, 12.0, res.Value)

	_, err = c.Calculate("1 + 2")
	assert.ErrorIs(t, err, rpn.ErrInvalidToken)
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Calculate("( 1 + 2 ) * 3 - 4 / 2")
			if assert.NoError(t, err) {
				assert.Equal(t, 7.0, res.Value)
			}
		}()
	}
	wg.Wait()
}
