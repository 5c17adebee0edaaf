package fuzzy

import (
	"gonum.org/v1/gonum/floats"
)

// DefuzzMethod selects how an aggregated curve is reduced to a crisp value.
type DefuzzMethod string

// All methods work on the sampled output universe.
const (
	// Centroid is the center of gravity sum(x*mu)/sum(mu)
	Centroid DefuzzMethod = "centroid"
	// Bisector is the first sample at which the cumulated degree reaches half of the total
	Bisector DefuzzMethod = "bisector"
	// MeanOfMaximum is the mean of the samples with maximal degree
	MeanOfMaximum DefuzzMethod = "mom"
	// SmallestOfMaximum is the smallest sample with maximal degree
	SmallestOfMaximum DefuzzMethod = "som"
	// LargestOfMaximum is the largest sample with maximal degree
	LargestOfMaximum DefuzzMethod = "lom"
)

// Valid reports whether m is a known method.
func (m DefuzzMethod) Valid() bool {
	switch m {
	case Centroid, Bisector, MeanOfMaximum, SmallestOfMaximum, LargestOfMaximum:
		return true
	}
	return false
}

// Defuzzify reduces the degrees sampled at xs to one crisp value.
// It fails with ErrUndefinedDefuzzification if every degree is 0.
func Defuzzify(method DefuzzMethod, xs, degrees []float64) (float64, error) {
	if len(xs) != len(degrees) {
		panic("fuzzy: length mismatch")
	}
	total := floats.Sum(degrees)
	if total <= 0 {
		return 0, &EvaluationError{Kind: ErrUndefinedDefuzzification, Detail: "aggregated membership is zero everywhere"}
	}

	switch method {
	case Centroid:
		return floats.Dot(xs, degrees) / total, nil
	case Bisector:
		cumulated := floats.CumSum(make([]float64, len(degrees)), degrees)
		half := total / 2
		for i, c := range cumulated {
			if c >= half {
				return xs[i], nil
			}
		}
		return xs[len(xs)-1], nil
	case MeanOfMaximum, SmallestOfMaximum, LargestOfMaximum:
		peak := floats.Max(degrees)
		var maxima []float64
		for i, d := range degrees {
			if d == peak {
				maxima = append(maxima, xs[i])
			}
		}
		switch method {
		case SmallestOfMaximum:
			return maxima[0], nil
		case LargestOfMaximum:
			return maxima[len(maxima)-1], nil
		default:
			return floats.Sum(maxima) / float64(len(maxima)), nil
		}
	default:
		return 0, &EvaluationError{Kind: ErrInvalidInput, Detail: "unknown defuzzification method " + string(method)}
	}
}
