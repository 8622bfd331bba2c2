// Package cmd is the hp82240 command line: rendering printer streams to
// images, serving a virtual paper roll over HTTP, viewing it in a terminal and
// copying it to a real thermal printer.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tomgalvin.uk/hp82240/internal/config"
)

var (
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "hp82240",
	Short:         "Emulator for the HP82240B infrared thermal printer",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			if err := c.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("Invalid log level %q:\n%w", logLevel, err)
			}
		}
		cfg = c
		logger = newLogger(os.Stderr, cfg.LogLevel)
		logger.Debug("Loaded configuration", "path", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default is config.json in the user config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
