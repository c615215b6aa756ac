package stats

// DataPoint is one score contributing to an evaluation key
type DataPoint struct {
	Path  string  `json:"path"`  // Candidate the score belongs to
	Value float64 `json:"value"` // Score in [0,100]
	Refs  int     `json:"refs"`  // Reference units the score was computed over
	Lines int     `json:"lines"` // Reference lines
}

// EvaluationResult summarizes all scores collected under one key.
// Cleared holds the same summary with outliers removed and is set only
// when outliers exist; it never has a Cleared result of its own.
type EvaluationResult struct {
	EvalKey  string            `json:"key"`
	NTotal   int               `json:"n_total"`
	NOutlier int               `json:"n_outlier"`
	NChars   int               `json:"n_refs"`
	NLines   int               `json:"n_lines"`
	Mean     float64           `json:"mean"`
	Std      float64           `json:"std"`
	Median   float64           `json:"median"`
	Cleared  *EvaluationResult `json:"cleared,omitempty"`
}

// Evaluate computes the total statistics of points and, if outliers are
// found, the nested cleared result over the remaining points.
func Evaluate(key string, points []DataPoint) EvaluationResult {
	result := summarize(key, points)

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	outliers := DetectOutliers(values)
	if len(outliers) == 0 {
		return result
	}

	dropped := make(map[int]bool, len(outliers))
	for _, i := range outliers {
		dropped[i] = true
	}
	regulars := make([]DataPoint, 0, len(points)-len(outliers))
	for i, p := range points {
		if !dropped[i] {
			regulars = append(regulars, p)
		}
	}

	cleared := summarize(key, regulars)
	result.NOutlier = len(outliers)
	result.Cleared = &cleared
	return result
}

// summarize computes counts, mean, std and median of points
func summarize(key string, points []DataPoint) EvaluationResult {
	result := EvaluationResult{EvalKey: key, NTotal: len(points)}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
		result.NChars += p.Refs
		result.NLines += p.Lines
	}
	result.Mean = Mean(values)
	result.Std = StdDev(values)
	result.Median = Median(values)
	return result
}
