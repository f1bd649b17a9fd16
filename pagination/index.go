// Package pagination pages through a flat tabular dataset and caches the pages it serves.
package pagination

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPage is returned when a page number or page size is below 1.
	ErrInvalidPage = errors.New("page and page size must be positive integers")

	// ErrInvalidIndex is returned when a start index is negative or past the dataset.
	ErrInvalidIndex = errors.New("index out of range")
)

// IndexRange returns the [start, end) row range of a 1-indexed page.
//
//	IndexRange(1, 7)  → 0, 7
//	IndexRange(3, 15) → 30, 45
func IndexRange(page, pageSize int) (start, end int, err error) {
	if page < 1 || pageSize < 1 {
		return 0, 0, fmt.Errorf("%w: page=%d page_size=%d", ErrInvalidPage, page, pageSize)
	}
	start = (page - 1) * pageSize
	return start, start + pageSize, nil
}
