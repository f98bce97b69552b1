package pagination

import (
	"fmt"
	"math"
)

// OffsetRequest represents an offset-based pagination request.
// Zero values fall back to the first page and PageDefaultSize.
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Validate rejects negative values and pages whose offset would overflow,
// and normalizes the rest in place.
func (r *OffsetRequest) Validate() error {
	if r.Page < 0 {
		return fmt.Errorf("page must not be negative, got %d", r.Page)
	}
	if r.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", r.Size)
	}
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Size == 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	if r.Page-1 > math.MaxInt/r.Size {
		return fmt.Errorf("page %d is out of range for size %d", r.Page, r.Size)
	}
	return nil
}

// OffsetResult is one page of items plus the total count across all pages.
type OffsetResult[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	HasMore bool  `json:"has_more"`
}

func NewOffsetResult[T any](items []T, total int64, page int, size int) *OffsetResult[T] {
	offset := (page - 1) * size
	hasMore := int64(offset+len(items)) < total

	return &OffsetResult[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Size:    size,
		HasMore: hasMore,
	}
}
