// Package cli implements the seatwise command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/seatwise/seatwise/pkg/buildinfo"
	"github.com/seatwise/seatwise/pkg/config"
	apperrors "github.com/seatwise/seatwise/pkg/errors"
	"github.com/seatwise/seatwise/pkg/state"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "seatwise"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "seatwise",
		Short:        "Seatwise organises people into seating arrangements",
		Long:         `Seatwise is a CLI tool for organising named people into fixed-capacity tables, honoring who wants to sit with whom and who must be kept apart.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.organiseCommand())
	root.AddCommand(c.sessionCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config Loading
// =============================================================================

// loadConfig reads the config file at path, or seatwise.toml in the
// working directory when path is empty. A missing default file is not an
// error; engine defaults apply.
func (c *CLI) loadConfig(path string) (config.Config, error) {
	explicit := path != ""
	if path == "" {
		path = config.DefaultFilename
	}
	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
			return config.Default(), nil
		}
		return config.Config{}, err
	}
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// snapshotDir returns the snapshot directory using XDG standard
// (~/.config/seatwise/snapshots/).
func snapshotDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "snapshots"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "snapshots"), nil
}

// openStore builds a snapshot store from config, defaulting the file
// backend to the XDG snapshot directory.
func (c *CLI) openStore(cmd *cobra.Command, cfg config.Config) (state.Store, error) {
	kind := cfg.Store
	url := cfg.StoreURL
	if (kind == "" || kind == "file") && url == "" {
		dir, err := snapshotDir()
		if err != nil {
			return state.NewNullStore(), nil
		}
		url = dir
	}
	return state.Open(cmd.Context(), kind, url)
}
