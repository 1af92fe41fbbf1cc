package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveImageURL(t *testing.T) {
	t.Parallel()

	const origin = "https://api.euroline.kz/"

	tests := map[string]struct {
		raw  string
		want string
	}{
		"empty":          {raw: "", want: ""},
		"absolute https": {raw: "https://cdn.example.com/a.jpg", want: "https://cdn.example.com/a.jpg"},
		"absolute http":  {raw: "http://cdn.example.com/a.jpg", want: "http://cdn.example.com/a.jpg"},
		"protocol less":  {raw: "//cdn.example.com/a.jpg", want: "https://cdn.example.com/a.jpg"},
		"rooted path":    {raw: "/uploads/a.jpg", want: "https://api.euroline.kz/uploads/a.jpg"},
		"bare path":      {raw: "uploads/a.jpg", want: "https://api.euroline.kz/uploads/a.jpg"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveImageURL(origin, tt.raw))
		})
	}

	assert.Equal(t, "/uploads/a.jpg", ResolveImageURL("", "/uploads/a.jpg"))
}
