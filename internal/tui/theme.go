package tui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// ThemeMode selects the dark or light palette.
type ThemeMode int

// ThemeMode values.
const (
	ThemeDark ThemeMode = iota
	ThemeLight
)

// ParseThemeMode maps a config label onto a theme mode.
func ParseThemeMode(raw string) ThemeMode {
	if strings.EqualFold(strings.TrimSpace(raw), "light") {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the config label for the mode.
func (t ThemeMode) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the opposite mode.
func (t ThemeMode) Toggle() ThemeMode {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// glamourStyle returns the markdown style name for the mode.
func (t ThemeMode) glamourStyle() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// palette holds every color a section renderer may use.
type palette struct {
	text        color.Color
	accent      color.Color
	accentAlt   color.Color
	muted       color.Color
	dim         color.Color
	navScrolled color.Color
	barFill     color.Color
	barEmpty    color.Color
	success     color.Color
	warning     color.Color
}

// palette returns the colors for the mode.
func (t ThemeMode) palette() palette {
	if t == ThemeLight {
		return palette{
			text:        lipgloss.Color("235"),
			accent:      lipgloss.Color("25"),
			accentAlt:   lipgloss.Color("91"),
			muted:       lipgloss.Color("242"),
			dim:         lipgloss.Color("250"),
			navScrolled: lipgloss.Color("254"),
			barFill:     lipgloss.Color("33"),
			barEmpty:    lipgloss.Color("252"),
			success:     lipgloss.Color("28"),
			warning:     lipgloss.Color("130"),
		}
	}
	return palette{
		text:        lipgloss.Color("252"),
		accent:      lipgloss.Color("75"),
		accentAlt:   lipgloss.Color("141"),
		muted:       lipgloss.Color("245"),
		dim:         lipgloss.Color("239"),
		navScrolled: lipgloss.Color("236"),
		barFill:     lipgloss.Color("39"),
		barEmpty:    lipgloss.Color("238"),
		success:     lipgloss.Color("42"),
		warning:     lipgloss.Color("214"),
	}
}

// groupAccent maps a skill-group accent name onto a color, falling back to the bar fill.
func (p palette) groupAccent(name string) color.Color {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blue":
		return lipgloss.Color("33")
	case "purple":
		return lipgloss.Color("135")
	case "green":
		return lipgloss.Color("41")
	case "orange":
		return lipgloss.Color("208")
	case "pink":
		return lipgloss.Color("205")
	case "cyan":
		return lipgloss.Color("45")
	case "red":
		return lipgloss.Color("196")
	default:
		return p.barFill
	}
}
