package tui

import (
	"github.com/evanschultz/folio/internal/browser"
	"github.com/evanschultz/folio/internal/domain"
)

// CopyFunc writes text to the clipboard.
type CopyFunc func(text string) error

// ReloadFunc loads a fresh portfolio.
type ReloadFunc func() (domain.Portfolio, error)

type Option func(*Model)

// WithTheme sets the initial theme mode.
func WithTheme(mode ThemeMode) Option {
	return func(m *Model) {
		m.theme = mode
	}
}

func WithDetailPolicy(policy browser.DetailPolicy) Option {
	return func(m *Model) {
		switch policy {
		case browser.DetailPolicyClose, browser.DetailPolicyRetain:
			m.detailPolicy = policy
		}
	}
}

// WithSmoothScroll toggles animated section jumps.
func WithSmoothScroll(enabled bool) Option {
	return func(m *Model) {
		m.smoothScroll = enabled
	}
}

func WithRevealThreshold(threshold float64) Option {
	return func(m *Model) {
		m.revealThreshold = threshold
	}
}

// WithLoadError starts the model on the error screen until a reload succeeds.
func WithLoadError(err error) Option {
	return func(m *Model) {
		m.err = err
	}
}

// WithCopyCallback sets the clipboard writer used by copy actions.
func WithCopyCallback(fn CopyFunc) Option {
	return func(m *Model) {
		m.copyFn = fn
	}
}

// WithReloadCallback sets the content loader used by reload.
func WithReloadCallback(fn ReloadFunc) Option {
	return func(m *Model) {
		m.reloadFn = fn
	}
}

func WithKeyConfig(cfg KeyConfig) Option {
	return func(m *Model) {
		m.keys.applyConfig(cfg)
	}
}
