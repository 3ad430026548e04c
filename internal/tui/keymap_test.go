package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/evanschultz/folio/internal/config"
)

// TestParseBindingKeys verifies key parsing behavior for configured overrides.
func TestParseBindingKeys(t *testing.T) {
	t.Run("space aliases", func(t *testing.T) {
		keys, help := parseBindingKeys("space", "m")
		if len(keys) != 2 || keys[0] != " " || keys[1] != "space" {
			t.Fatalf("unexpected parsed space keys %#v", keys)
		}
		if help != "space" {
			t.Fatalf("unexpected space help text %q", help)
		}
	})

	t.Run("uppercase rune includes shift alias", func(t *testing.T) {
		keys, help := parseBindingKeys("T", "t")
		if len(keys) != 2 || keys[0] != "T" || keys[1] != "shift+t" {
			t.Fatalf("unexpected uppercase parsed keys %#v", keys)
		}
		if help != "T" {
			t.Fatalf("unexpected uppercase help text %q", help)
		}
	})

	t.Run("multi rune lowercases key matcher", func(t *testing.T) {
		keys, help := parseBindingKeys("Ctrl+Y", "y")
		if len(keys) != 1 || keys[0] != "ctrl+y" {
			t.Fatalf("unexpected multi-rune parsed keys %#v", keys)
		}
		if help != "Ctrl+Y" {
			t.Fatalf("unexpected multi-rune help text %q", help)
		}
	})

	t.Run("comma list keeps every key", func(t *testing.T) {
		keys, help := parseBindingKeys("m, f2", "m")
		if len(keys) != 2 || keys[0] != "m" || keys[1] != "f2" {
			t.Fatalf("unexpected list parsed keys %#v", keys)
		}
		if help != "m/f2" {
			t.Fatalf("unexpected list help text %q", help)
		}
	})

	t.Run("blank uses fallback", func(t *testing.T) {
		keys, help := parseBindingKeys("  ", "d")
		if len(keys) != 1 || keys[0] != "d" {
			t.Fatalf("unexpected fallback parsed keys %#v", keys)
		}
		if help != "d" {
			t.Fatalf("unexpected fallback help text %q", help)
		}
	})
}

// TestConfigureBinding verifies binding override application behavior.
func TestConfigureBinding(t *testing.T) {
	b := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "old"))
	configureBinding(&b, "v", "t", "toggle theme")
	keys := b.Keys()
	if len(keys) != 1 || keys[0] != "v" {
		t.Fatalf("unexpected configured keys %#v", keys)
	}
	if b.Help().Key != "v" || b.Help().Desc != "toggle theme" {
		t.Fatalf("unexpected configured help %#v", b.Help())
	}
}

// TestKeyMapApplyConfig verifies dynamic key map override behavior.
func TestKeyMapApplyConfig(t *testing.T) {
	k := newKeyMap()
	k.applyConfig(KeyConfig{
		ToggleTheme: "T",
		Menu:        "o",
		CopyLink:    "c",
	})

	assertKeys := func(name string, binding key.Binding, expected ...string) {
		t.Helper()
		got := binding.Keys()
		if len(got) != len(expected) {
			t.Fatalf("%s key count mismatch got=%#v expected=%#v", name, got, expected)
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Fatalf("%s key mismatch got=%#v expected=%#v", name, got, expected)
			}
		}
	}

	assertKeys("toggle theme", k.toggleTheme, "T", "shift+t")
	assertKeys("menu", k.menu, "o")
	assertKeys("copy link", k.copyLink, "c")
	assertKeys("resume", k.resume, "d")
}

// TestKeyMapHelpGroups verifies help exposes every binding group.
func TestKeyMapHelpGroups(t *testing.T) {
	k := newKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Fatal("expected short help bindings")
	}
	groups := k.FullHelp()
	if len(groups) != 3 {
		t.Fatalf("expected 3 help groups, got %d", len(groups))
	}
	if got := k.jumpSection.Keys(); len(got) != len(sectionSpecs) {
		t.Fatalf("expected one jump key per section, got %#v", got)
	}
}

// TestFixedBindingsAreReservedInConfig verifies config rejects every key the page binds itself.
func TestFixedBindingsAreReservedInConfig(t *testing.T) {
	reserved := map[string]bool{}
	for _, k := range config.ReservedKeys() {
		reserved[k] = true
	}
	km := newKeyMap()
	fixed := []key.Binding{
		km.quit, km.reload, km.toggleHelp, km.scrollUp, km.scrollDown, km.pageUp, km.pageDown,
		km.top, km.bottom, km.jumpSection, km.focusNext, km.focusPrev, km.prevCategory,
		km.nextCategory, km.cardLeft, km.cardRight, km.openDetail, km.closeDetail, km.closeOverlay,
	}
	for _, binding := range fixed {
		for _, k := range binding.Keys() {
			if k == " " {
				continue
			}
			if !reserved[k] {
				t.Fatalf("expected fixed key %q to be reserved in config", k)
			}
		}
	}
}
