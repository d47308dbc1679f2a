package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/docker/gabeacon/pkg/analytics"
)

func newSessionCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "session start|end",
		Short:     "Mark the start or the end of a session",
		GroupID:   "hits",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"start", "end"},
		RunE: func(cmd *cobra.Command, args []string) error {
			start := args[0] == "start"
			return flags.sendHit(cmd, func(ctx context.Context, tracker *analytics.Tracker) {
				tracker.TrackSession(ctx, start)
			})
		},
	}
}

func newViewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "view <id>",
		Short:   "Send a screenview hit",
		GroupID: "hits",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.sendHit(cmd, func(ctx context.Context, tracker *analytics.Tracker) {
				tracker.TrackView(ctx, args[0])
			})
		},
	}
}

func newPageCmd(flags *rootFlags) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:     "page <path>",
		Short:   "Send a pageview hit",
		GroupID: "hits",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []analytics.PageOption
			if cmd.Flags().Changed("title") {
				opts = append(opts, analytics.WithTitle(title))
			}
			return flags.sendHit(cmd, func(ctx context.Context, tracker *analytics.Tracker) {
				tracker.TrackPage(ctx, args[0], opts...)
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Document title (dt)")

	return cmd
}

func newEventCmd(flags *rootFlags) *cobra.Command {
	var (
		label string
		value int64
	)

	cmd := &cobra.Command{
		Use:     "event <category> <action>",
		Short:   "Send an event hit",
		GroupID: "hits",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.sendHit(cmd, func(ctx context.Context, tracker *analytics.Tracker) {
				tracker.TrackEvent(ctx, args[0], args[1], analytics.WithLabel(label), analytics.WithValue(value))
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Event label (el)")
	cmd.Flags().Int64Var(&value, "value", 0, "Event value (ev)")

	return cmd
}
