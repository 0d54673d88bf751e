package view

import "math"

// Balance labels the dispersion of a stat spread.
type Balance string

const (
	BalanceBalanced    Balance = "Balanced"
	BalanceSpecialized Balance = "Specialized"
	BalanceSkewed      Balance = "Skewed"
)

// ClassifyBalance buckets a stat spread by its coefficient of variation
// (population standard deviation over mean). A mean of zero is treated as one
// so the division is always defined. An empty spread is Balanced.
func ClassifyBalance(values []int) Balance {
	if len(values) == 0 {
		return BalanceBalanced
	}

	mean := statMean(values)
	stdDev := statStdDev(values, mean)

	divisor := mean
	if divisor == 0 {
		divisor = 1
	}
	cv := stdDev / divisor

	switch {
	case cv < 0.20:
		return BalanceBalanced
	case cv < 0.35:
		return BalanceSpecialized
	default:
		return BalanceSkewed
	}
}

func statMean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func statStdDev(values []int, mean float64) float64 {
	variance := 0.0
	for _, v := range values {
		diff := float64(v) - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
