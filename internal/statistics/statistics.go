// Package statistics holds aggregate action counts for an opponent and small
// numeric summaries used when reporting simulation runs.
package statistics

import (
	"math"
)

// ActionCounts is a read-only snapshot of how often an opponent has folded,
// called, or raised. It is supplied per decision request and never mutated by
// the decision path.
type ActionCounts struct {
	Fold  int `json:"fold"`
	Call  int `json:"call"`
	Raise int `json:"raise"`
}

// Total returns the number of observed actions
func (c ActionCounts) Total() int {
	return c.Fold + c.Call + c.Raise
}

// FoldFrequency estimates how often the opponent folds when facing a bet.
// With minHistory or fewer observed actions the prior is returned unchanged;
// otherwise the observed fold rate is clamped to [clampMin, clampMax].
func (c ActionCounts) FoldFrequency(prior, clampMin, clampMax float64, minHistory int) float64 {
	n := c.Total()
	if n <= minHistory {
		return prior
	}
	f := float64(c.Fold) / float64(n)
	return math.Min(clampMax, math.Max(clampMin, f))
}

// Summary accumulates scalar observations for mean/variance reporting
type Summary struct {
	N    int
	Sum  float64
	Sum2 float64
}

// Add incorporates a new observation
func (s *Summary) Add(v float64) {
	s.N++
	s.Sum += v
	s.Sum2 += v * v
}

// Mean returns the arithmetic mean of all observations
func (s *Summary) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Summary) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Summary) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}
