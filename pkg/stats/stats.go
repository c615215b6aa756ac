// Package stats provides the descriptive statistics used to summarize
// evaluation scores: mean, population standard deviation, median and
// IQR based outlier detection.
package stats

import (
	"math"
	"slices"
)

// Mean returns the arithmetic average, 0 for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation (divides by n).
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// Median returns the middle value, or the average of the two middle values
// for an even count. values is not reordered.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// DetectOutliers returns the original indices of values lying strictly
// outside [q1-1.5·iqr, q3+1.5·iqr]. Quartiles are positional: q1 and q3 are
// the sorted values at n/4 and 3n/4. Fewer than 4 values have no outliers.
func DetectOutliers(values []float64) []int {
	if len(values) < 4 {
		return nil
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	q1 := sorted[len(sorted)/4]
	q3 := sorted[3*len(sorted)/4]
	iqr := q3 - q1
	lower, upper := q1-1.5*iqr, q3+1.5*iqr

	var outliers []int
	for i, v := range values {
		if v < lower || v > upper {
			outliers = append(outliers, i)
		}
	}
	return outliers
}
