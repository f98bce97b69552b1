package domain

import (
	"time"

	"github.com/google/uuid"
)

// Calculation is one evaluated infix expression as kept in history.
type Calculation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix"`
	Result     float64   `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}
