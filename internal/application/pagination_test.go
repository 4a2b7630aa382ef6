package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, DefaultPageLimit, 0},
		{"negative page", -5, 10, 1, 10, 0},
		{"limit over cap", 1, 1000, 1, MaxPageLimit, 0},
		{"negative limit", 2, -1, 2, DefaultPageLimit, DefaultPageLimit},
		{"plain", 3, 25, 3, 25, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NormalizePage(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset())
		})
	}
}
