package distance

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// Magnitude calculates the L2 norm of a vector.
func Magnitude(v []float32) float32 {
	var sum float32
	for _, x := range v {
		sum += x * x
	}

	return float32(math.Sqrt(float64(sum)))
}

// Cosine calculates the cosine similarity of two vectors.
// Assumes vectors are the same length (caller's responsibility).
//
// Cosine similarity is undefined when either vector has zero magnitude;
// in that case Cosine returns 0 so that degenerate vectors never rank
// above real matches and never inject NaN into a result set.
func Cosine(a, b []float32) float32 {
	ma := Magnitude(a)
	mb := Magnitude(b)

	if ma == 0 || mb == 0 {
		return 0
	}

	return Dot(a, b) / (ma * mb)
}
