package fuzzy

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxSamples bounds the size of a universe.
const MaxSamples = 1 << 20

// A Universe is the discretized domain of a linguistic variable.
// Samples are strictly increasing and never change after construction.
type Universe struct {
	samples []float64
	step    float64
}

// NewUniverse samples the closed interval [min, max] every step.
// The last sample is always max.
func NewUniverse(min, max, step float64) (*Universe, error) {
	for _, v := range []float64{min, max, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, constructionErrorf(ErrInvalidUniverse, "", "non-finite bound %v", v)
		}
	}
	if max <= min {
		return nil, constructionErrorf(ErrInvalidUniverse, "", "max %v not above min %v", max, min)
	}
	if step <= 0 {
		return nil, constructionErrorf(ErrInvalidUniverse, "", "step %v not positive", step)
	}
	if count := math.Round((max-min)/step) + 1; count > MaxSamples {
		return nil, constructionErrorf(ErrInvalidUniverse, "", "%g samples, at most %d allowed", count, MaxSamples)
	}
	n := int(math.Round((max-min)/step)) + 1
	if n < 2 {
		return nil, constructionErrorf(ErrInvalidUniverse, "", "%d samples", n)
	}
	samples := floats.Span(make([]float64, n), min, max)
	return &Universe{samples: samples, step: (max - min) / float64(n-1)}, nil
}

// Min is the first sample
func (u *Universe) Min() float64 { return u.samples[0] }

// Max is the last sample
func (u *Universe) Max() float64 { return u.samples[len(u.samples)-1] }

// Step is the distance between two adjacent samples
func (u *Universe) Step() float64 { return u.step }

// Len is the number of samples
func (u *Universe) Len() int { return len(u.samples) }

// At returns the i-th sample
func (u *Universe) At(i int) float64 { return u.samples[i] }

// Samples returns a copy of the samples
func (u *Universe) Samples() []float64 {
	return append([]float64(nil), u.samples...)
}

// Contains reports whether x lies inside [Min, Max].
func (u *Universe) Contains(x float64) bool {
	return x >= u.Min() && x <= u.Max()
}

func (u *Universe) clamp(x float64) float64 {
	return math.Max(u.Min(), math.Min(u.Max(), x))
}

// sample evaluates mf at every sample point.
func (u *Universe) sample(mf MembershipFunc) []float64 {
	curve := make([]float64, len(u.samples))
	for i, x := range u.samples {
		curve[i] = mf.Degree(x)
	}
	return curve
}
