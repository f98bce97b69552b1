package in_mem

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/in2post/internal/domain"
	"github.com/DjordjeVuckovic/in2post/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Calculation
	// insertion order, oldest first
	order []uuid.UUID
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Calculation),
	}
}

func (s *InMemStorer) Save(ctx context.Context, calc domain.Calculation) (uuid.UUID, error) {
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}
	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = time.Now()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.storage[calc.ID]; !exists {
		s.order = append(s.order, calc.ID)
	}
	s.storage[calc.ID] = calc
	slog.Debug("Saved calculation to in-memory storage", "id", calc.ID, "expression", calc.Expression)

	return calc.ID, nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	calc, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &calc, nil
}

func (s *InMemStorer) List(ctx context.Context, page, size int) ([]domain.Calculation, int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.order)
	offset := storage.Offset(page, size)
	if size <= 0 || offset >= total {
		return []domain.Calculation{}, int64(total), nil
	}

	end := min(offset+size, total)
	items := make([]domain.Calculation, 0, end-offset)
	for i := offset; i < end; i++ {
		items = append(items, s.storage[s.order[total-1-i]])
	}

	return items, int64(total), nil
}
