package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/in2post/internal/domain"
	"github.com/DjordjeVuckovic/in2post/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertCalculation = `
		INSERT INTO calculations (id, expression, postfix, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	selectCalculation = `
		SELECT id, expression, postfix, result, created_at
		FROM calculations
		WHERE id = $1;
	`
	listCalculations = `
		SELECT id, expression, postfix, result, created_at
		FROM calculations
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2;
	`
	countCalculations = `SELECT count(*) FROM calculations;`
)

type HistoryStorer struct {
	db *pgxpool.Pool
}

func NewHistoryStorer(pool *ConnectionPool) *HistoryStorer {
	return &HistoryStorer{db: pool.conn}
}

func (s *HistoryStorer) Save(ctx context.Context, calc domain.Calculation) (uuid.UUID, error) {
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}
	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = time.Now()
	}

	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		insertCalculation,
		calc.ID,
		calc.Expression,
		calc.Postfix,
		calc.Result,
		calc.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert calculation: %w", err)
	}

	return id, nil
}

func (s *HistoryStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	row := s.db.QueryRow(ctx, selectCalculation, id)

	calc, err := scanCalculation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return calc, nil
}

func (s *HistoryStorer) List(ctx context.Context, page, size int) ([]domain.Calculation, int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, countCalculations).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count calculations: %w", err)
	}

	rows, err := s.db.Query(ctx, listCalculations, size, storage.Offset(page, size))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Calculation, 0, size)
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *calc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read calculations: %w", err)
	}

	return items, total, nil
}

func scanCalculation(row pgx.Row) (*domain.Calculation, error) {
	var calc domain.Calculation
	if err := row.Scan(
		&calc.ID,
		&calc.Expression,
		&calc.Postfix,
		&calc.Result,
		&calc.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan calculation: %w", err)
	}
	return &calc, nil
}
