// Package config loads inkwell's configuration from the environment.
//
// Every field has a default; command-line flags override the loaded values.
//
// Environment Variables:
//   - INKWELL_DEBOUNCE, INKWELL_LINE_NUMBERS, INKWELL_MAX_IMAGE_BYTES
//   - INKWELL_SEED_LINES, INKWELL_SEED_FILE
//   - INKWELL_LOG_LEVEL, INKWELL_LOG_DEV, INKWELL_LOG_FILE
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	fmt.Println(cfg.Session.Debounce)
package config
