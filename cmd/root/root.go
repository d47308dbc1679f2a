package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docker/gabeacon/pkg/config"
)

func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "gabeacon",
		Short: "gabeacon - Google Analytics beacon",
		Long:  "gabeacon sends Measurement Protocol hits (sessions, screen views, page views and events) to Google Analytics",
		Example: `  gabeacon --tracking-id UA-12345678-99 --app-name "My app" --app-version 1.0.0 session start
  gabeacon view main_view
  gabeacon page /pricing --title Pricing
  gabeacon event "Event category" "Event action" --label button --value 1`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if flags.debugMode {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if flags.enableOtel {
				shutdown, err := initOTelSDK(cmd.Context())
				if err != nil {
					slog.Warn("Failed to initialize OpenTelemetry SDK", "error", err)
				} else {
					flags.otelShutdown = shutdown
					slog.Debug("OpenTelemetry SDK initialized successfully")
				}
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.otelShutdown != nil {
				if err := flags.otelShutdown(context.WithoutCancel(cmd.Context())); err != nil {
					slog.Warn("Failed to shut down OpenTelemetry SDK", "error", err)
				}
			}
			return nil
		},
		// If no subcommand is specified, show help
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags.register(cmd)

	cmd.AddGroup(&cobra.Group{ID: "hits", Title: "Hit Commands:"})

	cmd.AddCommand(newSessionCmd(&flags))
	cmd.AddCommand(newViewCmd(&flags))
	cmd.AddCommand(newPageCmd(&flags))
	cmd.AddCommand(newEventCmd(&flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return processErr(ctx, err, stderr, rootCmd)
	}
	return nil
}

func processErr(ctx context.Context, err error, stderr io.Writer, rootCmd *cobra.Command) error {
	if ctx.Err() != nil {
		return ctx.Err()
	} else if missingErr, ok := errors.AsType[*config.MissingFieldsError](err); ok {
		fmt.Fprintln(stderr, "The following settings must be provided:")
		for _, v := range missingErr.Missing {
			fmt.Fprintf(stderr, " - %s\n", v)
		}
		fmt.Fprintln(stderr, "\nEither:\n - Set those environment variables\n - Pass --tracking-id, --app-name and --app-version\n - Add them to the file given with --config")
	} else if _, ok := errors.AsType[RuntimeError](err); ok {
		fmt.Fprintln(stderr, err)
	} else {
		// Command line usage errors - show the error and usage
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr)
		if strings.HasPrefix(err.Error(), "unknown command ") || strings.HasPrefix(err.Error(), "accepts ") {
			_ = rootCmd.Usage()
		}
	}

	return err
}

// RuntimeError wraps runtime errors to distinguish them from usage errors
type RuntimeError struct {
	Err error
}

func (e RuntimeError) Error() string {
	return e.Err.Error()
}

func (e RuntimeError) Unwrap() error {
	return e.Err
}
