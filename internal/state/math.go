package state

import (
	"math"
	"time"
)

// clamp01 restricts a value to [0,1]. NaN collapses to 0.
func clamp01(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// decayFactor returns the exponential decay multiplier 0.5^(elapsed/halfLife)
// for an observation at `since` evaluated at `now`. Future timestamps decay
// nothing.
func decayFactor(now, since time.Time, halfLife time.Duration) float64 {
	elapsed := now.Sub(since)
	if elapsed <= 0 {
		return 1.0
	}
	return math.Pow(0.5, float64(elapsed)/float64(halfLife))
}

// avg calculates the average of all values
func avg(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance calculates the population variance
func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := avg(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}

// normalizedEntropy computes the Shannon entropy of a frequency
// distribution, normalized by log2 of the number of distinct categories
// observed so the result lands in [0,1]. Fewer than two categories carry
// no entropy.
func normalizedEntropy(counts map[string]int) float64 {
	if len(counts) < 2 {
		return 0
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return clamp01(entropy / math.Log2(float64(len(counts))))
}
