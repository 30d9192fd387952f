// Package strategy defines the tunable parameters of the decision rule and
// loads overrides from an HCL file.
package strategy

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Strategy holds every numeric knob of the decision rule. Defaults reproduce
// the reference behavior exactly.
type Strategy struct {
	// Trials is the Monte Carlo sample budget per decision.
	Trials int `hcl:"trials,optional"`

	// TrashEquity is the hard equity cutoff below which the only action
	// considered is folding.
	TrashEquity float64 `hcl:"trash_equity,optional"`

	// FoldFreqPrior is assumed when too little opponent history exists.
	FoldFreqPrior float64 `hcl:"fold_freq_prior,optional"`
	FoldFreqMin   float64 `hcl:"fold_freq_min,optional"`
	FoldFreqMax   float64 `hcl:"fold_freq_max,optional"`

	// MinObserved is the action-history size that must be exceeded before the
	// observed fold rate replaces the prior.
	MinObserved int `hcl:"min_observed,optional"`

	// FoldEV is the cost of folding, normalized to one committed bet unit.
	FoldEV float64 `hcl:"fold_ev,optional"`

	// CallScale and RaiseScale are the showdown payoff sizes for calling and
	// raising respectively.
	CallScale  float64 `hcl:"call_scale,optional"`
	RaiseScale float64 `hcl:"raise_scale,optional"`

	// Margins damp action oscillation from Monte Carlo noise: raising must
	// beat calling by RaiseMargin, calling must beat folding by CallMargin.
	RaiseMargin float64 `hcl:"raise_margin,optional"`
	CallMargin  float64 `hcl:"call_margin,optional"`
}

// Default returns the reference strategy parameters
func Default() *Strategy {
	return &Strategy{
		Trials:        800,
		TrashEquity:   0.35,
		FoldFreqPrior: 0.30,
		FoldFreqMin:   0.05,
		FoldFreqMax:   0.95,
		MinObserved:   5,
		FoldEV:        -1.0,
		CallScale:     2.0,
		RaiseScale:    3.0,
		RaiseMargin:   0.10,
		CallMargin:    0.10,
	}
}

// Load loads strategy parameters from an HCL file. A missing path or missing
// file yields the defaults; attributes absent from the file keep their
// default values.
func Load(filename string) (*Strategy, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse strategy file: %s", diags.Error())
	}

	var s Strategy
	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode strategy file: %s", diags.Error())
	}

	applyDefaults(&s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// applyDefaults fills unset (zero) attributes with the reference values
func applyDefaults(s *Strategy) {
	def := Default()
	if s.Trials == 0 {
		s.Trials = def.Trials
	}
	if s.TrashEquity == 0 {
		s.TrashEquity = def.TrashEquity
	}
	if s.FoldFreqPrior == 0 {
		s.FoldFreqPrior = def.FoldFreqPrior
	}
	if s.FoldFreqMin == 0 {
		s.FoldFreqMin = def.FoldFreqMin
	}
	if s.FoldFreqMax == 0 {
		s.FoldFreqMax = def.FoldFreqMax
	}
	if s.MinObserved == 0 {
		s.MinObserved = def.MinObserved
	}
	if s.FoldEV == 0 {
		s.FoldEV = def.FoldEV
	}
	if s.CallScale == 0 {
		s.CallScale = def.CallScale
	}
	if s.RaiseScale == 0 {
		s.RaiseScale = def.RaiseScale
	}
	if s.RaiseMargin == 0 {
		s.RaiseMargin = def.RaiseMargin
	}
	if s.CallMargin == 0 {
		s.CallMargin = def.CallMargin
	}
}

// Validate checks that the parameters describe a usable decision rule
func (s *Strategy) Validate() error {
	if s.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", s.Trials)
	}
	if s.TrashEquity < 0 || s.TrashEquity > 1 {
		return fmt.Errorf("trash_equity must be in [0,1], got %v", s.TrashEquity)
	}
	if s.FoldFreqMin > s.FoldFreqMax {
		return fmt.Errorf("fold_freq_min %v exceeds fold_freq_max %v", s.FoldFreqMin, s.FoldFreqMax)
	}
	if s.FoldFreqPrior < 0 || s.FoldFreqPrior > 1 {
		return fmt.Errorf("fold_freq_prior must be in [0,1], got %v", s.FoldFreqPrior)
	}
	if s.CallScale <= 0 || s.RaiseScale <= 0 {
		return fmt.Errorf("payoff scales must be positive")
	}
	if s.RaiseMargin < 0 || s.CallMargin < 0 {
		return fmt.Errorf("margins must be non-negative")
	}
	return nil
}
