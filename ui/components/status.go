package components

import (
	"github.com/Rorical/DictPanel/ui/styles"
)

func RenderStatus(help string, width int) string {
	return styles.StatusStyle(width).Render(help)
}
