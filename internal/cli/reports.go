package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/trainlog/trainlog/internal/domain/activity"
	"github.com/trainlog/trainlog/internal/domain/training"
)

var errResetNotConfirmed = errors.New("refusing to remove every session without --yes")

func (a *app) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Show the known tags and their colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.println(cmd, a.out.TagTable(training.KnownTags()))
			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the training log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.println(cmd, a.out.Summary(a.sessions.Stats(cmd.Context())))
			return nil
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	var opts activity.ListOptions
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent changes to the training log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.history.Recent(cmd.Context(), opts)
			if err != nil {
				return err
			}
			a.println(cmd, a.out.History(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.SessionID, "session", "", "Only show changes to this session")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "Maximum number of entries")
	return cmd
}

func (a *app) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errResetNotConfirmed
			}
			if err := a.sessions.Reset(cmd.Context()); err != nil {
				return err
			}
			a.println(cmd, "All sessions removed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm removal of every session")
	return cmd
}
