package returns

import (
	"math"
	"sort"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Mean returns the arithmetic mean of values, or false when values is empty.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// Median returns the median of values, or false when values is empty.
// For an even count it averages the two middle values.
func Median(values []float64) (float64, bool) {
	n := len(values)
	if n == 0 {
		return 0, false
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2], true
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, true
}

// Max returns the largest value, or false when values is empty.
func Max(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best, true
}

// Min returns the smallest value, or false when values is empty.
func Min(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	worst := values[0]
	for _, v := range values[1:] {
		if v < worst {
			worst = v
		}
	}
	return worst, true
}

// Summarize computes mean/median/best/worst of the return percentages.
// It returns nil for an empty record set, so summaries are omitted rather
// than rendered as zeros.
func Summarize(records []models.ReturnRecord) *models.Summary {
	if len(records) == 0 {
		return nil
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.ReturnPct
	}
	mean, _ := Mean(values)
	median, _ := Median(values)
	best, _ := Max(values)
	worst, _ := Min(values)
	return &models.Summary{
		Mean:   round2(mean),
		Median: round2(median),
		Best:   round2(best),
		Worst:  round2(worst),
	}
}
