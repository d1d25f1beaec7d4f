package features

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// summary holds the aggregate statistics of one per-frame series.
// Std is the population standard deviation.
type summary struct {
	Mean float64
	Std  float64
	Max  float64
	Min  float64
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// stdPop computes the population standard deviation.
func stdPop(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := stat.Mean(xs, nil)
	return math.Sqrt(stat.MomentAbout(2, xs, m, nil))
}

func summarize(xs []float64) summary {
	if len(xs) == 0 {
		return summary{}
	}
	return summary{
		Mean: stat.Mean(xs, nil),
		Std:  stdPop(xs),
		Max:  floats.Max(xs),
		Min:  floats.Min(xs),
	}
}

// summarizeColumns aggregates a frames x coefficients matrix per
// coefficient, yielding one summary slice entry per statistic.
func summarizeColumns(frames [][]float64, numCols int) (means, stds, maxs, mins []float64) {
	means = make([]float64, numCols)
	stds = make([]float64, numCols)
	maxs = make([]float64, numCols)
	mins = make([]float64, numCols)

	if len(frames) == 0 {
		return means, stds, maxs, mins
	}

	column := make([]float64, len(frames))
	for c := range numCols {
		for t, frame := range frames {
			column[t] = frame[c]
		}
		s := summarize(column)
		means[c] = s.Mean
		stds[c] = s.Std
		maxs[c] = s.Max
		mins[c] = s.Min
	}
	return means, stds, maxs, mins
}

// flatten concatenates the rows of a matrix into a single series.
func flatten(frames [][]float64) []float64 {
	if len(frames) == 0 {
		return nil
	}
	out := make([]float64, 0, len(frames)*len(frames[0]))
	for _, frame := range frames {
		out = append(out, frame...)
	}
	return out
}
