package compute

// Float64To32 converts a slice of float64 to float32.
func Float64To32(input []float64) []float32 {
	output := make([]float32, len(input))
	for i, v := range input {
		output[i] = float32(v)
	}
	return output
}

// Float32To64 converts a slice of float32 to float64.
func Float32To64(input []float32) []float64 {
	output := make([]float64, len(input))
	for i, v := range input {
		output[i] = float64(v)
	}
	return output
}
