package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		total       int64
		totalPages  int
		hasNext     bool
		hasPrev     bool
	}{
		{"second page of 15", 2, 10, 15, 2, false, true},
		{"first page of 15", 1, 10, 15, 2, true, false},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"beyond range", 999, 10, 15, 2, false, true},
		{"empty set", 1, 10, 0, 0, false, false},
		{"single page", 1, 100, 42, 1, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.hasNext, p.HasNext)
			assert.Equal(t, tc.hasPrev, p.HasPrev)
		})
	}
}
