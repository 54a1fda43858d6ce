package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trainlog/trainlog/internal/domain/training"
)

// TimeLayout is the display format of session times.
const TimeLayout = "3:04 PM"

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List training sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.println(cmd, a.out.SessionList(a.sessions.List(cmd.Context())))
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a session and its exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.sessions.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.println(cmd, a.out.SessionDetail(sess))
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var (
		date, at, tag string
		exercises     []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new training session",
		Long: `Record a new training session. Date defaults to today and time to
now. Exercises are given as name:sets:reps:weight; omitted numbers are 0.`,
		Example: `  trainlog add --tag Brazo --exercise "Curl:3:12:25"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.opts.Now()
			if !cmd.Flags().Changed("date") {
				date = training.DateOf(now).String()
			}
			if !cmd.Flags().Changed("time") {
				at = now.Format(TimeLayout)
			}

			in := training.SessionInput{Date: date, Time: at, Tag: tag}
			for _, raw := range exercises {
				ex, err := parseExercise(raw)
				if err != nil {
					return err
				}
				in.Exercises = append(in.Exercises, ex)
			}

			sess, err := a.sessions.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			a.println(cmd, fmt.Sprintf("Created session %s", sess.ID))
			a.println(cmd, a.out.SessionCard(sess))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Session date ("+training.DateLayout+")")
	cmd.Flags().StringVar(&at, "time", "", "Session time, e.g. 7:30 AM")
	cmd.Flags().StringVar(&tag, "tag", "", "Session tag: "+strings.Join(training.KnownTags(), ", "))
	cmd.Flags().StringArrayVar(&exercises, "exercise", nil, "Exercise as name:sets:reps:weight (repeatable)")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var date, at, tag string
	cmd := &cobra.Command{
		Use:   "edit <session-id>",
		Short: "Change the date, time or tag of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := a.sessions.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			in := training.InputOf(existing)
			if cmd.Flags().Changed("date") {
				in.Date = date
			}
			if cmd.Flags().Changed("time") {
				in.Time = at
			}
			if cmd.Flags().Changed("tag") {
				in.Tag = tag
			}

			sess, err := a.sessions.Update(cmd.Context(), existing.ID, in)
			if err != nil {
				return err
			}
			a.println(cmd, fmt.Sprintf("Updated session %s", sess.ID))
			a.println(cmd, a.out.SessionCard(sess))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "New date ("+training.DateLayout+")")
	cmd.Flags().StringVar(&at, "time", "", "New time")
	cmd.Flags().StringVar(&tag, "tag", "", "New tag")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.println(cmd, fmt.Sprintf("Deleted session %s", args[0]))
			return nil
		},
	}
}

// parseExercise reads name:sets:reps:weight. The name may itself contain colons.
func parseExercise(raw string) (training.Exercise, error) {
	parts := strings.Split(raw, ":")
	var in training.ExerciseInput
	if len(parts) > 4 {
		in.Name = strings.Join(parts[:len(parts)-3], ":")
		parts = append([]string{in.Name}, parts[len(parts)-3:]...)
	} else {
		in.Name = parts[0]
	}
	if len(parts) > 1 {
		in.Sets = parts[1]
	}
	if len(parts) > 2 {
		in.Reps = parts[2]
	}
	if len(parts) > 3 {
		in.Weight = parts[3]
	}
	return in.Build("")
}
