package recent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLimit(t *testing.T) {
	t.Parallel()

	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name    string
		count   *int
		showAll bool
		want    int
	}{
		{"defaults", nil, false, 30},
		{"all without count is unlimited", nil, true, 0},
		{"explicit count", intPtr(5), false, 5},
		{"explicit count with all", intPtr(5), true, 5},
		{"explicit zero is unlimited", intPtr(0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveLimit(tt.count, tt.showAll, 30))
		})
	}
}
