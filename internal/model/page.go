package model

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageQuery selects one page of a filtered listing. Page numbers start at 1.
type PageQuery struct {
	Number int
	Size   int
	Filter string
}

// Normalize clamps the page number and size into their allowed ranges.
// The page number is capped so that Offset never overflows.
func (q PageQuery) Normalize() PageQuery {
	switch {
	case q.Size < 1:
		q.Size = DefaultPageSize
	case q.Size > MaxPageSize:
		q.Size = MaxPageSize
	}

	if maxNumber := math.MaxInt/q.Size + 1; q.Number > maxNumber {
		q.Number = maxNumber
	}
	if q.Number < 1 {
		q.Number = 1
	}

	return q
}

// Offset is the number of rows before the first row of the page.
func (q PageQuery) Offset() int {
	return (q.Number - 1) * q.Size
}

// Page is one page of a listing together with the size of the whole listing.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalCount int
}

func (p *Page[T]) TotalPages() int {
	if p.Size < 1 {
		return 0
	}
	return (p.TotalCount + p.Size - 1) / p.Size
}

func (p *Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p *Page[T]) HasNext() bool {
	return p.Number < p.TotalPages()
}
