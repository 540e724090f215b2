package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "prefix only", parts: nil, want: "trivia"},
		{name: "joined", parts: []string{"question", "page", "10"}, want: "trivia:question:page:10"},
		{name: "empty parts skipped", parts: []string{"category", "", "all"}, want: "trivia:category:all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.parts...))
		})
	}
}

func TestCategoryListKey(t *testing.T) {
	assert.Equal(t, "trivia:category:list:all", CategoryListKey())
}
