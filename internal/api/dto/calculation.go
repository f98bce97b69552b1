package dto

import (
	"time"

	"github.com/DjordjeVuckovic/in2post/internal/domain"
	"github.com/google/uuid"
)

// ExpressionRequest carries an infix expression, tokens separated by whitespace.
type ExpressionRequest struct {
	Expression string `json:"expression" example:"3 + 4 * ( 2 - 1 )"`
}

// PostfixRequest carries a postfix expression, tokens separated by whitespace.
type PostfixRequest struct {
	Postfix string `json:"postfix" example:"3 4 2 1 - * +"`
}

type ConvertResponse struct {
	Expression string   `json:"expression"`
	Postfix    string   `json:"postfix"`
	Tokens     []string `json:"tokens"`
}

type EvaluateResponse struct {
	Postfix string  `json:"postfix"`
	Result  float64 `json:"result"`
}

type CalculationResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix"`
	Result     float64   `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCalculationResponse(c domain.Calculation) CalculationResponse {
	return CalculationResponse{
		ID:         c.ID,
		Expression: c.Expression,
		Postfix:    c.Postfix,
		Result:     c.Result,
		CreatedAt:  c.CreatedAt,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}
