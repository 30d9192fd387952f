package strategy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, 800, s.Trials)
	assert.Equal(t, 0.35, s.TrashEquity)
	assert.Equal(t, 0.30, s.FoldFreqPrior)
	assert.Equal(t, 0.05, s.FoldFreqMin)
	assert.Equal(t, 0.95, s.FoldFreqMax)
	assert.Equal(t, 5, s.MinObserved)
	assert.Equal(t, -1.0, s.FoldEV)
	assert.Equal(t, 2.0, s.CallScale)
	assert.Equal(t, 3.0, s.RaiseScale)
	assert.Equal(t, 0.10, s.RaiseMargin)
	assert.Equal(t, 0.10, s.CallMargin)

	require.NoError(t, s.Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load("/nonexistent/strategy.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverrides(t *testing.T) {
	path := writeStrategy(t, `
trials = 200
trash_equity = 0.5
raise_margin = 0.25
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200, s.Trials)
	assert.Equal(t, 0.5, s.TrashEquity)
	assert.Equal(t, 0.25, s.RaiseMargin)

	// Unset attributes keep defaults.
	assert.Equal(t, 0.30, s.FoldFreqPrior)
	assert.Equal(t, 2.0, s.CallScale)
	assert.Equal(t, 3.0, s.RaiseScale)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeStrategy(t, `trials = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeStrategy(t, `trash_equity = 1.5`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Strategy)
	}{
		{"negative trials", func(s *Strategy) { s.Trials = -1 }},
		{"trash equity above one", func(s *Strategy) { s.TrashEquity = 1.2 }},
		{"inverted clamp bounds", func(s *Strategy) { s.FoldFreqMin = 0.9; s.FoldFreqMax = 0.1 }},
		{"prior out of range", func(s *Strategy) { s.FoldFreqPrior = -0.1 }},
		{"zero call scale", func(s *Strategy) { s.CallScale = -1 }},
		{"negative margin", func(s *Strategy) { s.CallMargin = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			assert.Error(t, s.Validate())
		})
	}
}

func writeStrategy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strategy.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
