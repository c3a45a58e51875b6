package trainings

// EstimateOneRepMax estimates the one-rep max with the Epley formula,
// weight * (1 + reps/30). Zero reps yield the weight itself and negative
// inputs count as zero.
func EstimateOneRepMax(weight float64, repetition int) float64 {
	if weight < 0 {
		weight = 0
	}
	if repetition <= 0 {
		return weight
	}
	return weight * (1 + float64(repetition)/30)
}
