package fallback

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/admissions-parser/internal/types"
)

type fakeExtractor struct {
	resp  *Response
	err   error
	calls int
	text  string
}

func (f *fakeExtractor) Name() string { return "fake extractor" }

func (f *fakeExtractor) Extract(_ context.Context, documentText string) (*Response, error) {
	f.calls++
	f.text = documentText
	return f.resp, f.err
}

func diagnosticMessages(data *types.ParsedApplicationData) []string {
	out := make([]string, 0, len(data.Diagnostics))
	for _, d := range data.Diagnostics {
		out = append(out, d.Message)
	}
	return out
}

func TestMissingCriticalFields(t *testing.T) {
	tests := []struct {
		name     string
		updates  map[types.ProfileField]string
		expected []string
	}{
		{
			"Everything missing",
			map[types.ProfileField]string{},
			[]string{
				"no SAT or ACT score found",
				"no GPA found",
				"no AP course count found",
				"no class rank found",
			},
		},
		{
			"ACT satisfies the test score gap",
			map[types.ProfileField]string{
				types.FieldACT:                 "33",
				types.FieldGPAUnweighted:       "3.8",
				types.FieldAPCount:             "4",
				types.FieldClassRankPercentile: "5",
			},
			nil,
		},
		{
			"Weighted GPA satisfies the GPA gap",
			map[types.ProfileField]string{
				types.FieldSAT:                 "1450",
				types.FieldGPAWeighted:         "4.2",
				types.FieldAPCount:             "4",
				types.FieldClassRankPercentile: "5",
			},
			nil,
		},
		{
			"Only rank missing",
			map[types.ProfileField]string{
				types.FieldSAT:           "1450",
				types.FieldGPAUnweighted: "3.8",
				types.FieldAPCount:       "4",
			},
			[]string{"no class rank found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MissingCriticalFields(tt.updates))
		})
	}
}

func TestRunSkipsWhenComplete(t *testing.T) {
	data := types.NewParsedApplicationData()
	for f, v := range map[types.ProfileField]string{
		types.FieldSAT:                 "1450",
		types.FieldGPAUnweighted:       "3.8",
		types.FieldAPCount:             "4",
		types.FieldClassRankPercentile: "5",
	} {
		data.SetUpdate(f, v, types.ApplicationMetric{Field: f, RawValue: v})
	}

	ext := &fakeExtractor{}
	Run(context.Background(), "raw text", data, ext)

	assert.Zero(t, ext.calls)
	assert.Contains(t, diagnosticMessages(data), "skipped: all critical fields present")
}

func TestRunMergeIsAdditive(t *testing.T) {
	data := types.NewParsedApplicationData()
	data.SetUpdate(types.FieldSAT, "1450", types.ApplicationMetric{
		Field: types.FieldSAT, RawValue: "1450", Reason: "matched labeled pattern",
	})

	ext := &fakeExtractor{resp: &Response{
		Success: true,
		Updates: map[string]string{
			"sat":                  "1300", // already set: must not overwrite
			"gpa_weighted":         "4.1",
			"ap_count":             "5",
			"unknown_key":          "7",
			"act":                  "99", // out of range: discarded
			"leadership_positions": "7",  // off the even score scale: discarded
		},
		Misc: []string{"Founded a community robotics workshop"},
	}}

	Run(context.Background(), "original document text", data, ext)

	require.Equal(t, 1, ext.calls)
	assert.Equal(t, "original document text", ext.text)

	assert.Equal(t, "1450", data.Updates[types.FieldSAT])
	assert.Equal(t, "4.1", data.Updates[types.FieldGPAWeighted])
	assert.Equal(t, "5", data.Updates[types.FieldAPCount])
	assert.NotContains(t, data.Updates, types.FieldACT)
	assert.NotContains(t, data.Updates, types.FieldLeadership)

	diags := strings.Join(diagnosticMessages(data), "\n")
	assert.Contains(t, diags, "triggered:")
	assert.Contains(t, diags, "ignored unknown field unknown_key")
	assert.Contains(t, diags, "discarded out-of-range value for act")
	assert.Contains(t, diags, "discarded out-of-range value for leadership_positions")
	assert.Contains(t, diags, "merged 2 fields from fake extractor")

	require.Len(t, data.Misc, 1)
	assert.Contains(t, data.Misc[0], "Founded a community robotics workshop")
}

func TestRunMergeSkipsDuplicateNotes(t *testing.T) {
	data := types.NewParsedApplicationData()
	data.Misc = []string{"Founded a community robotics workshop"}

	ext := &fakeExtractor{resp: &Response{
		Success: true,
		Updates: map[string]string{},
		Misc: []string{
			"Founded a community robotics workshop.",
			"short",
			"Plays jazz piano in a community ensemble",
		},
	}}

	Run(context.Background(), "text", data, ext)

	joined := strings.Join(data.Misc, "\n")
	assert.Contains(t, joined, "Plays jazz piano in a community ensemble")
	assert.Equal(t, 1, strings.Count(joined, "robotics workshop"))
}

func TestRunExtractorErrorKeepsResult(t *testing.T) {
	data := types.NewParsedApplicationData()
	data.SetUpdate(types.FieldSAT, "1450", types.ApplicationMetric{Field: types.FieldSAT})

	ext := &fakeExtractor{err: errors.New("connection refused")}
	Run(context.Background(), "text", data, ext)

	assert.Equal(t, "1450", data.Updates[types.FieldSAT])
	assert.Contains(t, strings.Join(diagnosticMessages(data), "\n"), "call failed: connection refused")
}
