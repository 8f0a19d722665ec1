package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Numeric helpers shared by the curve generators and the peak picker,
// using gonum for the statistical parts

// Clamp constrains a value to a range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp01 constrains a value to [0, 1]
func Clamp01(value float64) float64 {
	return Clamp(value, 0.0, 1.0)
}

// SanitizeAmplitude maps a raw magnitude into [0, 1]; non-finite input
// becomes 0 so NaN never reaches a coordinate
func SanitizeAmplitude(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0.0
	}
	return Clamp01(value)
}

// SanitizeAmplitudes fills dst with sanitized values from src; missing
// source elements become 0
func SanitizeAmplitudes(dst, src []float64) {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = SanitizeAmplitude(src[i])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0.0
	}
}

// Lerp performs linear interpolation between two values
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// StandardDeviation calculates the sample standard deviation using gonum
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.StdDev(data, nil)
}

// MinMaxNormalize normalizes data to [0, 1] range
func MinMaxNormalize(data []float64) []float64 {
	if len(data) == 0 {
		return data
	}

	min := floats.Min(data)
	max := floats.Max(data)

	normalized := make([]float64, len(data))
	if math.Abs(max-min) < 1e-10 {
		return normalized // constant data maps to all zeros
	}

	for i, val := range data {
		normalized[i] = (val - min) / (max - min)
	}

	return normalized
}

// IsPowerOfTwo checks if n is a power of 2
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// NextPowerOfTwo finds the next power of 2 >= n
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}

	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
