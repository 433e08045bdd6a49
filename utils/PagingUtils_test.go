package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateList(t *testing.T) {
	cases := []struct {
		size, limit, page int
		start, end        int
	}{
		{100, 10, 1, 10, 20},
		{100, 10, 3, 30, 40},
		{100, 10, 10, 0, 0},
		{0, 10, 1, 0, 0},
		{10, 0, 1, 0, 10},
		{10, 10, 0, 0, 10},
		{10, -10, 1, 0, 0},
		{25, 10, 2, 20, 25},
	}
	for _, c := range cases {
		start, end := PaginateList(c.size, c.limit, c.page)
		assert.Equal(t, c.start, start, "start for %+v", c)
		assert.Equal(t, c.end, end, "end for %+v", c)
	}
}
