package components

import (
	"regexp"
	"strings"

	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/utils"
	"github.com/Rorical/DictPanel/ui/styles"
)

// SupportedLocalesURL documents the locale codes the dictionary accepts.
const SupportedLocalesURL = "https://www.metabase.com/docs/latest/configuring-metabase/localization#supported-languages"

var emphasis = regexp.MustCompile(`\*([^*]+)\*`)

// RenderDescription renders the explanatory text above the buttons. The
// emphasized phrase in the locales sentence becomes a link to the docs.
func RenderDescription(loc *i18n.Localizer, width int) string {
	columns := []string{
		loc.T("panel.column.locale"),
		loc.T("panel.column.string"),
		loc.T("panel.column.translation"),
	}
	locales := emphasis.ReplaceAllString(loc.T("panel.description.locales"), "[$1]("+SupportedLocalesURL+")")

	md := strings.Join([]string{
		loc.T("panel.description.intro"),
		loc.T("panel.description.columns"),
		"- " + strings.Join(columns, "\n- "),
		loc.T("panel.description.sensitive") + " " + loc.T("panel.description.replace"),
		locales,
	}, "\n\n")
	return styles.DescriptionStyle(width).Render(utils.RenderMarkdown(md))
}
