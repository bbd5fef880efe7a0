package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Markdown styles
func CodeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1)
}

func BoldStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true)
}

func ItalicStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Italic(true)
}

func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Underline(true)
}

func ListStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		MarginLeft(2)
}

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
	codeSpan       = regexp.MustCompile("`([^`]+)`")
	link           = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	bold           = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italic         = regexp.MustCompile(`\*([^*]+)\*|_([^_]+)_`)
)

// RenderMarkdown renders the small subset of markdown used in panel text:
// paragraphs, "- " lists, code spans, links, bold and italics. Single
// newlines inside a paragraph are joined with spaces.
func RenderMarkdown(text string) string {
	var out []string
	for _, paragraph := range paragraphBreak.Split(strings.TrimSpace(text), -1) {
		var joined []string
		lastIsItem := false
		for _, line := range strings.Split(paragraph, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if item, ok := strings.CutPrefix(line, "- "); ok {
				joined = append(joined, ListStyle().Render("• "+renderInline(item)))
				lastIsItem = true
				continue
			}
			if n := len(joined); n > 0 && !lastIsItem {
				joined[n-1] += " " + renderInline(line)
				continue
			}
			joined = append(joined, renderInline(line))
			lastIsItem = false
		}
		if len(joined) > 0 {
			out = append(out, strings.Join(joined, "\n"))
		}
	}
	return strings.Join(out, "\n\n")
}

// renderInline handles code first so its content is not formatted, then
// links, then emphasis. Links show their target since terminals cannot
// follow them.
func renderInline(line string) string {
	line = codeSpan.ReplaceAllStringFunc(line, func(match string) string {
		return CodeStyle().Render(codeSpan.FindStringSubmatch(match)[1])
	})
	line = link.ReplaceAllStringFunc(line, func(match string) string {
		parts := link.FindStringSubmatch(match)
		return LinkStyle().Render(parts[1]) + " (" + parts[2] + ")"
	})
	line = bold.ReplaceAllStringFunc(line, func(match string) string {
		return BoldStyle().Render(bold.FindStringSubmatch(match)[1])
	})
	return italic.ReplaceAllStringFunc(line, func(match string) string {
		parts := italic.FindStringSubmatch(match)
		text := parts[1]
		if text == "" {
			text = parts[2]
		}
		return ItalicStyle().Render(text)
	})
}
