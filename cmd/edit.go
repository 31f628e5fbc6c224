package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	setWeight float64
	setReps   int
	setType   string
	setRest   int
	setDone   bool
)

var editSetCmd = &cobra.Command{
	Use:   "edit-set [exercise-index] [set-index]",
	Short: "Edit a set in the current workout",
	Long: `Edit a set in the current workout.

Only the flags you pass are changed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		we, set, err := a.setAt(args[0], args[1])
		if err != nil {
			return err
		}

		patch, err := setPatchFromFlags(cmd, setWeight, setReps, setType)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("rest") {
			patch.RestTime = &setRest
		}
		if cmd.Flags().Changed("done") {
			patch.Completed = &setDone
		}
		if patch.IsEmpty() {
			return fmt.Errorf("Nothing to change. Pass --weight, --reps, --type, --rest or --done")
		}

		a.tracker.Machine().UpdateSet(we.ID, set.ID, patch)
		updated := patch.Apply(set)

		fmt.Printf("✅ Set updated: %skg × %d (%s)\n",
			utils.FormatWeight(updated.Weight), updated.Reps, updated.Type.Label())
		return nil
	},
}

func init() {
	editSetCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "Weight in kg")
	editSetCmd.Flags().IntVarP(&setReps, "reps", "r", 0, "Reps performed")
	editSetCmd.Flags().StringVarP(&setType, "type", "t", "", "Set type")
	editSetCmd.Flags().IntVar(&setRest, "rest", 0, "Rest after the set, in seconds")
	editSetCmd.Flags().BoolVar(&setDone, "done", false, "Mark the set completed (--done=false to undo)")
	rootCmd.AddCommand(editSetCmd)
}
