package main

import (
	"context"
	"os"
	"strconv"

	"duit/internal/api"
	"duit/internal/cli"
	"duit/internal/common"
	"duit/internal/config"
)

// newClient builds the API client from the resolved configuration.
func newClient() *api.Client {
	return api.NewClient(config.BaseURL())
}

// parseID parses a positional numeric id argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewUserErrorf(err, "invalid %s ID: %q", what, arg)
	}
	return id, nil
}

// confirm asks for a y/N answer on stdin.
func confirm(ctx context.Context, prompt string) bool {
	return cli.Confirm(ctx, os.Stdout, cli.NewLineReader(os.Stdin), prompt)
}
