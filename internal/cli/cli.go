// Package cli implements the btforder command-line interface: a thin
// demo/inspection shell around the btf ordering core. It owns every
// concern the core itself stays free of — matrix I/O, configuration,
// styled output, logging, and diagram rendering.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	config Config
}

// New creates a CLI instance with a default logger and config, loading
// config.toml from the working directory if present.
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := loadConfig("config.toml")
	if cfg.Verbose && level == LogInfo {
		level = LogDebug
	}
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		config: cfg,
	}
	if err != nil {
		c.Logger.Debugf("no config.toml loaded: %v", err)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "btforder",
		Short:        "btforder computes block triangular form orderings of sparse matrices",
		Long:         `btforder is a demo and inspection tool around the btf ordering core: maximum transversal, completion of a deficient matching, and block triangular decomposition.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.orderCommand())
	root.AddCommand(c.visualizeCommand())

	return root
}
