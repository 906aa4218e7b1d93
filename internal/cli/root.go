// Package cli wires configuration, logging, storage and the menu session
// into the autogallery command.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/autogallery/internal/config"
	"github.com/mmynk/autogallery/internal/menu"
	"github.com/mmynk/autogallery/internal/metrics"
	"github.com/mmynk/autogallery/internal/storage/textfile"
	"github.com/mmynk/autogallery/pkg/logging"
)

var (
	// Build info - set via -ldflags at build time
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

// NewRootCommand builds the autogallery command. With no subcommand it runs
// the interactive menu on the command's input and output streams.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autogallery",
		Short: "Manage an automobile gallery inventory",
		Long: `autogallery is an interactive console for adding, updating, removing,
listing and searching automobile records kept in a comma-delimited text file.
Changes are written back to the file only when you choose Exit.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// Execute runs the root command against the process streams.
func Execute() error {
	return NewRootCommand().Execute()
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	closer, err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	store, err := textfile.New(cfg.DataFile)
	if err != nil {
		return err
	}

	m := metrics.New()
	session := menu.NewSession(store, cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithLogger(slog.Default()),
		menu.WithMetrics(m),
	)

	ctx := cmd.Context()
	if err := session.Load(ctx); err != nil {
		return err
	}

	runErr := session.Run(ctx)
	writeMetrics(m, cfg.MetricsFile)
	return runErr
}

func writeMetrics(m *metrics.Metrics, path string) {
	if path == "" {
		return
	}
	if err := m.WriteTextfile(path); err != nil {
		slog.Warn("Failed to write metrics file", "path", path, "error", err)
		return
	}
	slog.Debug("Metrics written", "path", path)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "autogallery %s (%s) built %s\n", Version, CommitID, BuildDate)
			return err
		},
	}
}
