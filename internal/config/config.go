// Package config provides configuration loading for the client.
//
// Settings come from, in increasing precedence: defaults, the config file
// (default $HOME/.config/duit/config.yaml), a .env file in the working
// directory, and DUIT_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL points at a locally running backend.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Theme names persisted in the config file.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Init wires viper. An empty cfgFile searches the standard locations; a
// missing config file is fine, defaults apply.
func Init(cfgFile string) error {
	// .env is optional and only feeds the environment
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(filepath.Join(home, ".config", "duit"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DUIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("api.base_url", DefaultBaseURL)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("ui.theme", ThemeDark)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// BaseURL returns the REST backend base URL.
func BaseURL() string {
	return viper.GetString("api.base_url")
}

// ThemeName returns the persisted theme preference.
func ThemeName() string {
	return viper.GetString("ui.theme")
}

// SaveTheme persists the theme preference back to the config file,
// creating it when the user has none yet.
func SaveTheme(name string) error {
	viper.Set("ui.theme", name)

	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir := filepath.Join(home, ".config", "duit")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
