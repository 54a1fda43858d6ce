package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trainlog/trainlog/internal/domain/training"
)

func (a *app) exerciseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Add or remove exercises of a session",
	}
	cmd.AddCommand(a.exerciseAddCmd(), a.exerciseRemoveCmd())
	return cmd
}

func (a *app) exerciseAddCmd() *cobra.Command {
	var in training.ExerciseInput
	cmd := &cobra.Command{
		Use:   "add <session-id>",
		Short: "Add an exercise to a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := a.sessions.AddExercise(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			a.println(cmd, fmt.Sprintf("Added exercise %s", ex.ID))
			a.println(cmd, a.out.ExerciseCard(ex))
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "Exercise name")
	cmd.Flags().StringVar(&in.Sets, "sets", "", fmt.Sprintf("Sets, 0-%d", training.MaxSets))
	cmd.Flags().StringVar(&in.Reps, "reps", "", fmt.Sprintf("Reps, 0-%d", training.MaxReps))
	cmd.Flags().StringVar(&in.Weight, "weight", "", fmt.Sprintf("Weight in pounds, 0-%d", training.MaxWeight))
	return cmd
}

func (a *app) exerciseRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <session-id> <exercise-id>",
		Short: "Remove an exercise from a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.RemoveExercise(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			a.println(cmd, fmt.Sprintf("Removed exercise %s", args[1]))
			return nil
		},
	}
}
