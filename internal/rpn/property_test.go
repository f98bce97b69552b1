package rpn

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/in2post/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatExpr builds "n op n op n ..." with operands in 1..9.
func flatExpr(r *rand.Rand, ops []string, n int) ([]float64, []string, string) {
	nums := make([]float64, n)
	chosen := make([]string, n-1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		nums[i] = float64(r.Intn(9) + 1)
		if i > 0 {
			chosen[i-1] = ops[r.Intn(len(ops))]
			b.WriteString(" " + chosen[i-1] + " ")
		}
		b.WriteString(strconv.Itoa(int(nums[i])))
	}
	return nums, chosen, b.String()
}

func TestPipeline_LeftToRightForAdditiveChains(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		nums, ops, expr := flatExpr(r, []string{"+", "-"}, r.Intn(8)+1)

		want := nums[0]
		for j, op := range ops {
			want, _ = Apply(want, nums[j+1], op)
		}

		postfix, err := ConvertString(expr)
		require.NoError(t, err, expr)
		got, err := EvaluateString(postfix)
		require.NoError(t, err, expr)
		assert.Equal(t, want, got, "%s -> %s", expr, postfix)
	}
}

func TestPipeline_PrecedenceForFlatChains(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 500; i++ {
		nums, ops, expr := flatExpr(r, []string{"+", "-", "*", "/"}, r.Intn(8)+1)

		// fold multiplicative runs into terms, then fold the terms
		terms := []float64{nums[0]}
		var additive []string
		for j, op := range ops {
			if Precedence(op) == 2 {
				last := len(terms) - 1
				terms[last], _ = Apply(terms[last], nums[j+1], op)
				continue
			}
			additive = append(additive, op)
			terms = append(terms, nums[j+1])
		}
		want := terms[0]
		for j, op := range additive {
			want, _ = Apply(want, terms[j+1], op)
		}

		postfix, err := ConvertString(expr)
		require.NoError(t, err, expr)
		got, err := EvaluateString(postfix)
		require.NoError(t, err, expr)
		assert.Equal(t, want, got, "%s -> %s", expr, postfix)
	}
}

func TestPipeline_AcceptedInputAlwaysEvaluates(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	alphabet := []string{"0", "1", "2", "7", "+", "-", "*", "/", "(", ")", "(", ")"}
	accepted := 0

	for i := 0; i < 20000; i++ {
		n := r.Intn(9) + 1
		fields := make([]string, n)
		for j := range fields {
			fields[j] = alphabet[r.Intn(len(alphabet))]
		}

		postfix, err := Convert(token.FromValues(fields))
		if err != nil {
			continue
		}
		accepted++

		_, err = Evaluate(postfix)
		if err != nil {
			assert.ErrorIs(t, err, ErrDivisionByZero, "infix %q postfix %q", strings.Join(fields, " "), token.Join(postfix))
		}
	}

	assert.Greater(t, accepted, 100)
}
