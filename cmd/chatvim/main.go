// Package main is the entry point for chatvim, a terminal chat input with
// Vim-style modal editing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/dshills/chatvim/internal/app"
	"github.com/dshills/chatvim/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the global flags.
type options struct {
	configPath string
	debug      bool
	logFile    string
	noVim      bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "chatvim",
		Short: "Chat input with Vim-style modal editing",
		Long: `chatvim - a chat input box with Vim-style modal editing

Type messages in a terminal chat box using Normal, Insert, Visual and
Visual Line modes. Yanks to the + and * registers are mirrored to the
system clipboard.`,
		Example: `  # Start chatting
  chatvim

  # Use a specific config file and log to a file
  chatvim --config ./chatvim.toml --log-file /tmp/chatvim.log --debug

  # Start with modal editing disabled (F2 toggles it)
  chatvim --no-vim

  # Show the key reference
  chatvim keys`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&opts.noVim, "no-vim", false, "Start with modal editing disabled")

	keysCmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"keybinds"},
		Short:   "Show the key reference",
		Long:    `Display the modal editing keys in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printKeys(cmd.OutOrStdout())
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after applying the config file and
CHATVIM_* environment overrides, as TOML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return cfg.WriteTOML(cmd.OutOrStdout())
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := resolveConfigPath(opts.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(keysCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

// resolveConfigPath returns the config file to load and whether it exists.
func resolveConfigPath(flagPath string) (exists bool, path string, err error) {
	path = flagPath
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return false, "", nil
	}

	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			if flagPath != "" {
				return false, path, fmt.Errorf("config file %s: %w", path, statErr)
			}
			return false, path, nil
		}
		return false, path, statErr
	}
	return true, path, nil
}

// loadConfig loads and validates the configuration and applies flag
// overrides. It returns the path to watch, or "" when no file is in use.
func loadConfig(opts options) (*config.Config, string, error) {
	exists, path, err := resolveConfigPath(opts.configPath)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		path = ""
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	if opts.debug {
		cfg.Log.Level = "debug"
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	return cfg, path, nil
}

// runChat starts the terminal chat client.
func runChat(ctx context.Context, opts options) error {
	cfg, watchPath, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := app.OpenLogger(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: watchPath,
		NoVim:      opts.noVim,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return application.Run(ctx)
}
