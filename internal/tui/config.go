package tui

import (
	"duit/internal/service"
	"duit/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Service   service.API
	SaveTheme func(name string) error
	Theme     themes.Theme
	Width     int
	Height    int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Dark,
		Width:  80,
		Height: 24,
	}
}

// WithService sets the API client the views talk to.
func WithService(svc service.API) Option {
	return func(c *Config) {
		c.Service = svc
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSaveTheme sets the callback that persists the theme preference.
func WithSaveTheme(save func(name string) error) Option {
	return func(c *Config) {
		c.SaveTheme = save
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
