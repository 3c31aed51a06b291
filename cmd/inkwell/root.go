package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/inkwell/internal/app"
	"github.com/iw2rmb/inkwell/internal/config"
	"github.com/iw2rmb/inkwell/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "inkwell [file]",
	Short: "Inkwell is a terminal editor for very large documents",
	Long: `Inkwell loads a document once, keeps it in sync with the editor at a bounded
rate and embeds pasted images inline as data URIs.

Without a file it opens a generated document of --seed-lines lines.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	registerFlags(rootCmd)
}

func registerFlags(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.Flags()
	f.Duration("debounce", def.Session.Debounce, "Quiet interval before changes and pastes are applied")
	f.Int64("max-image-bytes", def.Session.MaxImageBytes, "Largest pasted image that is embedded")
	f.Bool("line-numbers", def.Editor.LineNumbers, "Show the line-number gutter")
	f.Int("tab-width", def.Editor.TabWidth, "Tab stop width")
	f.Int("seed-lines", def.Seed.Lines, "Lines in the generated document when no file is given")
	f.String("log-level", def.Logging.Level, "Log level (debug, info, warn, error)")
	f.Bool("log-dev", def.Logging.Development, "Human-readable log output")
	f.String("log-file", "", "Write logs to this file (logging is off without one)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, args, cfg); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		File:        cfg.Logging.File,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	logger.Info("starting",
		zap.Int("seed_lines", cfg.Seed.Lines),
		zap.String("seed_file", cfg.Seed.File),
		zap.Duration("debounce", cfg.Session.Debounce),
	)

	m := app.New(app.Options{Config: cfg, Logger: logger.Logger})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Session().Close()
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, args []string, cfg *config.Config) error {
	f := cmd.Flags()
	var err error
	if f.Changed("debounce") {
		cfg.Session.Debounce, err = f.GetDuration("debounce")
	}
	if err == nil && f.Changed("max-image-bytes") {
		cfg.Session.MaxImageBytes, err = f.GetInt64("max-image-bytes")
	}
	if err == nil && f.Changed("line-numbers") {
		cfg.Editor.LineNumbers, err = f.GetBool("line-numbers")
	}
	if err == nil && f.Changed("tab-width") {
		cfg.Editor.TabWidth, err = f.GetInt("tab-width")
	}
	if err == nil && f.Changed("seed-lines") {
		cfg.Seed.Lines, err = f.GetInt("seed-lines")
	}
	if err == nil && f.Changed("log-level") {
		cfg.Logging.Level, err = f.GetString("log-level")
	}
	if err == nil && f.Changed("log-dev") {
		cfg.Logging.Development, err = f.GetBool("log-dev")
	}
	if err == nil && f.Changed("log-file") {
		cfg.Logging.File, err = f.GetString("log-file")
	}
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Seed.File = args[0]
	}
	return cfg.Validate()
}
