package stats

import "math"

// Estimate1RM projects a one-rep max with the Epley formula.
// Sets without weight or reps estimate to 0 and never rank as records.
func Estimate1RM(weight float64, reps int) float64 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}

	return math.Round(weight * (1 + float64(reps)/30))
}
