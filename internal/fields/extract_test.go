package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/admissions-parser/internal/types"
)

func resultMap(results []Result) map[types.ProfileField]string {
	m := make(map[types.ProfileField]string, len(results))
	for _, r := range results {
		m[r.Field] = r.Value
	}
	return m
}

func TestExtractTranscriptSummary(t *testing.T) {
	text := "Weighted GPA: 4.2 Unweighted GPA: 3.8 SAT: 1450 ACT: 33 Class Rank: 23/420"
	got := resultMap(Extract(text))

	expected := map[types.ProfileField]string{
		types.FieldGPAWeighted:         "4.2",
		types.FieldGPAUnweighted:       "3.8",
		types.FieldSAT:                 "1450",
		types.FieldACT:                 "33",
		types.FieldClassRankPercentile: "5",
	}
	assert.Equal(t, expected, got)
}

func TestExtractGPA(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		field    types.ProfileField
		expected string
	}{
		{"Labeled weighted", "Weighted GPA: 4.35", types.FieldGPAWeighted, "4.35"},
		{"Parenthesized weighted", "GPA (weighted): 4.1", types.FieldGPAWeighted, "4.1"},
		{"Inverted weighted", "Earned a 4.2 weighted average", types.FieldGPAWeighted, "4.2"},
		{"Labeled unweighted", "Unweighted GPA: 3.85", types.FieldGPAUnweighted, "3.85"},
		{"Generic GPA maps to unweighted", "GPA: 3.7", types.FieldGPAUnweighted, "3.7"},
		{"Cumulative GPA maps to unweighted", "Cumulative GPA: 3.9", types.FieldGPAUnweighted, "3.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultMap(Extract(tt.input))
			assert.Equal(t, tt.expected, got[tt.field])
		})
	}
}

func TestGenericGPADoesNotStealWeightedValue(t *testing.T) {
	// Only a weighted GPA present: the generic unweighted fallback must not
	// claim it.
	got := resultMap(Extract("Weighted GPA: 4.2"))
	assert.Equal(t, "4.2", got[types.FieldGPAWeighted])
	assert.NotContains(t, got, types.FieldGPAUnweighted)
}

func TestExtractSAT(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"Labeled", "SAT: 1450", "1450", true},
		{"With score word", "SAT Score: 1520", "1520", true},
		{"Bracketed composite", "SAT (composite: 1380)", "1380", true},
		{"Inverted", "Scored 1490 on the SAT", "1490", true},
		{"Out of range rejected", "SAT: 1750", "", false},
		{"Below range rejected", "SAT: 250", "", false},
		{"No SAT mention", "GPA: 3.9", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultMap(Extract(tt.input))
			if tt.found {
				assert.Equal(t, tt.expected, got[types.FieldSAT])
			} else {
				assert.NotContains(t, got, types.FieldSAT)
			}
		})
	}
}

func TestExtractACT(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"Labeled", "ACT: 33", "33", true},
		{"With composite word", "ACT Composite: 35", "35", true},
		{"Inverted", "Earned a 34 on the ACT", "34", true},
		{"Out of range rejected", "ACT: 48", "", false},
		{"Lowercase prose does not match", "acted in the school play for 2 years", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultMap(Extract(tt.input))
			if tt.found {
				assert.Equal(t, tt.expected, got[types.FieldACT])
			} else {
				assert.NotContains(t, got, types.FieldACT)
			}
		})
	}
}

func TestExtractClassRank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"Fraction", "Class Rank: 23/420", "5", true},
		{"Fraction with of", "Ranked 12 of 300", "4", true},
		{"Valedictorian clamps to top 1", "Rank: 1/600", "1", true},
		{"Top percent phrasing", "Top 10% of graduating class", "10", true},
		{"Explicit percentile", "Class Rank: 15%", "15", true},
		{"Rank larger than size rejected", "Rank: 500/400", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultMap(Extract(tt.input))
			if tt.found {
				assert.Equal(t, tt.expected, got[types.FieldClassRankPercentile])
			} else {
				assert.NotContains(t, got, types.FieldClassRankPercentile)
			}
		})
	}
}

func TestExtractClassSize(t *testing.T) {
	got := resultMap(Extract("Class size: 420"))
	assert.Equal(t, "420", got[types.FieldClassSize])

	got = resultMap(Extract("Graduating class of 350 students"))
	assert.Equal(t, "350", got[types.FieldClassSize])

	// Below range.
	got = resultMap(Extract("Class size: 5"))
	assert.NotContains(t, got, types.FieldClassSize)
}

func TestEvaluateVariantPriority(t *testing.T) {
	// Labeled wins even when an inverted form also matches.
	text := "SAT: 1400 and later scored 1500 on the SAT"
	m, ok := Evaluate(text, satVariants)
	require.True(t, ok)
	assert.Equal(t, "labeled", m.Variant)
	assert.Equal(t, "1400", m.Value)
}

func TestEvaluateFallsThroughOnInvalidCapture(t *testing.T) {
	// The labeled variant captures 9999 which fails the range check; the
	// inverted variant then picks up the valid score.
	text := "SAT: 9999, previously 1310 on the SAT"
	m, ok := Evaluate(text, satVariants)
	require.True(t, ok)
	assert.Equal(t, "1310", m.Value)
}
