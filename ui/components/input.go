package components

import (
	"github.com/Rorical/DictPanel/ui/styles"
)

// RenderFileInput draws the path prompt with a cursor at the end.
func RenderFileInput(prompt, input string, width int) string {
	return prompt + "\n" + styles.InputStyle(width).Render(input+"▏")
}
