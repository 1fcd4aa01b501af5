package recent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	refs := []Ref{
		{FullName: "refs/heads/main"},
		{FullName: "refs/heads/feature-login"},
		{FullName: "refs/heads/fix-logout"},
		{FullName: "refs/tags/v1"},
		{FullName: "refs/heads/lgn"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", []string{"refs/heads/main", "refs/heads/feature-login", "refs/heads/fix-logout", "refs/tags/v1", "refs/heads/lgn"}},
		{"keeps recency order", "lg", []string{"refs/heads/feature-login", "refs/heads/fix-logout", "refs/heads/lgn"}},
		{"matches display name not full name", "heads", nil},
		{"tags prefix is part of the name", "tags", []string{"refs/tags/v1"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got []string
			for _, r := range Filter(refs, tt.query) {
				got = append(got, r.FullName)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
