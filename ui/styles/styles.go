package styles

import "github.com/charmbracelet/lipgloss"

var (
	brand   = lipgloss.Color("62")
	muted   = lipgloss.Color("245")
	danger  = lipgloss.Color("203")
	success = lipgloss.Color("78")
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		MarginBottom(1)
}

func DescriptionStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(muted)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(brand).
		Underline(true)
}

func ButtonStyle(focused, disabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2)
	if focused {
		style = style.BorderForeground(brand).Bold(true)
	}
	if disabled {
		style = style.Foreground(lipgloss.Color("241"))
	}
	return style
}

func IconStyle(icon string) lipgloss.Style {
	switch icon {
	case "check":
		return lipgloss.NewStyle().Foreground(success)
	case "warning":
		return lipgloss.NewStyle().Foreground(danger)
	default:
		return lipgloss.NewStyle().Foreground(brand)
	}
}

func AlertStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(danger)
}

func ListItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(danger).
		MarginLeft(2)
}

func InputStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(brand).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style
}

func DialogStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(danger).
		Padding(1, 2)
}

func ToastStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("236")).
		Padding(0, 1)
}

func StatusStyle(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style
}
