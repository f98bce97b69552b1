package storage

import (
	"context"
	"math"

	"github.com/DjordjeVuckovic/in2post/internal/domain"
	"github.com/google/uuid"
)

type Reader interface {
	// Get returns ErrNotFound when no calculation has the given id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Calculation, error)
	// List returns one page of history, newest first, and the total count.
	// page is 1-based.
	List(ctx context.Context, page, size int) ([]domain.Calculation, int64, error)
}

// History is a calculation log that can be written and read back.
type History interface {
	Storer
	Reader
}

// Offset converts a 1-based page and size into a row offset. Offsets that
// would overflow saturate at math.MaxInt so they land past the last row.
func Offset(page, size int) int {
	if page < 1 || size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}
