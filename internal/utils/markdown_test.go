package utils

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"joins lines", "one\ntwo", "one two"},
		{"paragraphs", "one\n\ntwo", "one\n\ntwo"},
		{"list", "cols:\n- a\n- b", "cols:\n  • a\n  • b"},
		{"link", "See [docs](https://example.com).", "See docs (https://example.com)."},
		{"emphasis", "a *b* **c** _d_", "a b c d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMarkdown(tt.in))
		})
	}
}
