package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ratlog/internal/models"
	"github.com/misterclayt0n/ratlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	newSetWeight float64
	newSetReps   int
	newSetType   string
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise-index]",
	Short: "Add a set to an exercise in the current workout",
	Long: `Add a set to an exercise in the current workout.

Weight and reps default to the previous set of the exercise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), offline)
		if err != nil {
			return err
		}
		defer a.Close()

		we, err := a.exerciseAt(args[0])
		if err != nil {
			return err
		}

		patch, err := setPatchFromFlags(cmd, newSetWeight, newSetReps, newSetType)
		if err != nil {
			return err
		}

		m := a.tracker.Machine()
		m.AddSet(we.ID)

		updated, _ := a.exerciseAt(args[0])
		added := updated.Sets[len(updated.Sets)-1]
		m.UpdateSet(we.ID, added.ID, patch)
		added = patch.Apply(added)

		fmt.Printf("✅ Added set %d to '%s': %skg × %d\n",
			len(updated.Sets), we.Exercise.Name, utils.FormatWeight(added.Weight), added.Reps)
		return nil
	},
}

// setPatchFromFlags turns the flags the user actually passed into a patch.
func setPatchFromFlags(cmd *cobra.Command, weight float64, reps int, setType string) (models.SetPatch, error) {
	var patch models.SetPatch
	if cmd.Flags().Changed("weight") {
		patch.Weight = &weight
	}
	if cmd.Flags().Changed("reps") {
		patch.Reps = &reps
	}
	if cmd.Flags().Changed("type") {
		t := models.SetType(setType)
		if !t.IsValid() {
			return patch, fmt.Errorf("Invalid set type '%s'", setType)
		}
		patch.Type = &t
	}
	return patch, nil
}

func init() {
	addSetCmd.Flags().Float64VarP(&newSetWeight, "weight", "w", 0, "Weight in kg")
	addSetCmd.Flags().IntVarP(&newSetReps, "reps", "r", 0, "Number of reps")
	addSetCmd.Flags().StringVarP(&newSetType, "type", "t", string(models.SetTypeNormal), "Set type (warmup, normal, failure, drop, superset, assisted, tempo)")
	rootCmd.AddCommand(addSetCmd)
}
