package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("DUIT_TEST_DIR", "/opt/duit")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "absolute untouched", path: "/etc/duit/config.yaml", want: "/etc/duit/config.yaml"},
		{name: "tilde prefix", path: "~/config.yaml", want: filepath.Join(home, "config.yaml")},
		{name: "bare tilde", path: "~", want: home},
		{name: "environment variable", path: "$DUIT_TEST_DIR/config.yaml", want: "/opt/duit/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}
