package app

import (
	"context"
	"fmt"
	"os"

	"github.com/iw2rmb/inkwell/internal/config"
	"github.com/iw2rmb/inkwell/internal/seed"
	"github.com/iw2rmb/inkwell/session"
)

// ConfigLoader loads the configured seed file, or generates the configured
// number of "Line N" rows when no file is set.
func ConfigLoader(cfg *config.Config) session.Loader {
	file, lines := cfg.Seed.File, cfg.Seed.Lines
	return func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if file == "" {
			return seed.Lines(lines), nil
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read seed file: %w", err)
		}
		return string(data), nil
	}
}
