package storage

import (
	"context"

	"github.com/DjordjeVuckovic/in2post/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	// Save persists a calculation, assigning an ID and timestamp when unset.
	Save(ctx context.Context, calc domain.Calculation) (uuid.UUID, error)
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type"
	ErrNotFound          StorerError = "calculation not found"
)

func (e StorerError) Error() string {
	return string(e)
}
