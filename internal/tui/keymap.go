package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
)

// keyMap represents key map data used by this package.
type keyMap struct {
	quit         key.Binding
	reload       key.Binding
	toggleHelp   key.Binding
	scrollUp     key.Binding
	scrollDown   key.Binding
	pageUp       key.Binding
	pageDown     key.Binding
	top          key.Binding
	bottom       key.Binding
	jumpSection  key.Binding
	toggleTheme  key.Binding
	menu         key.Binding
	focusNext    key.Binding
	focusPrev    key.Binding
	prevCategory key.Binding
	nextCategory key.Binding
	cardLeft     key.Binding
	cardRight    key.Binding
	openDetail   key.Binding
	closeDetail  key.Binding
	closeOverlay key.Binding
	copyLink     key.Binding
	resume       key.Binding
}

// newKeyMap constructs key map.
func newKeyMap() keyMap {
	return keyMap{
		quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload content")),
		toggleHelp:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		scrollUp:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		scrollDown:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		pageUp:       key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		pageDown:     key.NewBinding(key.WithKeys("pgdown", "space", " "), key.WithHelp("pgdn/space", "page down")),
		top:          key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "back to top")),
		bottom:       key.NewBinding(key.WithKeys("G", "shift+g", "end"), key.WithHelp("G", "bottom")),
		jumpSection:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "jump to section")),
		toggleTheme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		menu:         key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		focusNext:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus projects/skills")),
		focusPrev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus back")),
		prevCategory: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous filter")),
		nextCategory: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next filter")),
		cardLeft:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous card")),
		cardRight:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next card")),
		openDetail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "project details")),
		closeDetail:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close details")),
		closeOverlay: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		copyLink:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy repo link")),
		resume:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "copy resume link")),
	}
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.scrollDown, k.jumpSection, k.menu, k.focusNext, k.openDetail, k.toggleTheme, k.toggleHelp, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.scrollUp, k.scrollDown, k.pageUp, k.pageDown, k.top, k.bottom, k.jumpSection, k.menu},
		{k.focusNext, k.focusPrev, k.prevCategory, k.nextCategory, k.cardLeft, k.cardRight, k.openDetail, k.closeDetail},
		{k.copyLink, k.resume, k.toggleTheme, k.reload, k.toggleHelp, k.closeOverlay, k.quit},
	}
}

// KeyConfig holds user key overrides; blank fields keep the defaults.
type KeyConfig struct {
	ToggleTheme string
	Menu        string
	CopyLink    string
	Resume      string
}

// applyConfig rebinds the configurable actions.
func (k *keyMap) applyConfig(cfg KeyConfig) {
	configureBinding(&k.toggleTheme, cfg.ToggleTheme, "t", "toggle theme")
	configureBinding(&k.menu, cfg.Menu, "m", "menu")
	configureBinding(&k.copyLink, cfg.CopyLink, "y", "copy repo link")
	configureBinding(&k.resume, cfg.Resume, "d", "copy resume link")
}

// configureBinding replaces keys and help on one binding.
func configureBinding(b *key.Binding, raw, fallback, desc string) {
	keys, helpKey := parseBindingKeys(raw, fallback)
	b.SetKeys(keys...)
	b.SetHelp(helpKey, desc)
}

// parseBindingKeys expands a comma-separated key spec into matcher keys and help text.
func parseBindingKeys(raw, fallback string) ([]string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	keys := make([]string, 0, 2)
	helpKeys := make([]string, 0, 1)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.EqualFold(part, "space"):
			keys = append(keys, " ", "space")
			helpKeys = append(helpKeys, "space")
		case utf8.RuneCountInString(part) == 1:
			r, _ := utf8.DecodeRuneInString(part)
			keys = append(keys, part)
			if unicode.IsUpper(r) {
				keys = append(keys, "shift+"+string(unicode.ToLower(r)))
			}
			helpKeys = append(helpKeys, part)
		default:
			keys = append(keys, strings.ToLower(part))
			helpKeys = append(helpKeys, part)
		}
	}
	if len(keys) == 0 {
		return []string{fallback}, fallback
	}
	return keys, strings.Join(helpKeys, "/")
}
