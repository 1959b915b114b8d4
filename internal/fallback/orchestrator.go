package fallback

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/admissions-parser/internal/fields"
	"github.com/jonathan/admissions-parser/internal/notes"
	"github.com/jonathan/admissions-parser/internal/types"
)

// MissingCriticalFields returns one reason per critical gap in the
// deterministic result. An empty slice means the fallback is not needed.
func MissingCriticalFields(updates map[types.ProfileField]string) []string {
	var reasons []string

	_, hasSAT := updates[types.FieldSAT]
	_, hasACT := updates[types.FieldACT]
	if !hasSAT && !hasACT {
		reasons = append(reasons, "no SAT or ACT score found")
	}

	_, hasWeighted := updates[types.FieldGPAWeighted]
	_, hasUnweighted := updates[types.FieldGPAUnweighted]
	if !hasWeighted && !hasUnweighted {
		reasons = append(reasons, "no GPA found")
	}

	if _, ok := updates[types.FieldAPCount]; !ok {
		reasons = append(reasons, "no AP course count found")
	}
	if _, ok := updates[types.FieldClassRankPercentile]; !ok {
		reasons = append(reasons, "no class rank found")
	}

	return reasons
}

// Run issues one extraction call with the original unfiltered text and merges
// the response into data. The merge is strictly additive: it never overwrites
// a field the deterministic pass already set, and fallback misc notes pass
// the same duplicate check as every other candidate. Any failure is recorded
// as a diagnostic and the deterministic result stands.
func Run(ctx context.Context, rawText string, data *types.ParsedApplicationData, extractor Extractor) {
	reasons := MissingCriticalFields(data.Updates)
	if len(reasons) == 0 {
		data.AddDiagnostic("fallback", "skipped: all critical fields present")
		return
	}
	data.AddDiagnostic("fallback", "triggered: "+strings.Join(reasons, "; "))

	resp, err := extractor.Extract(ctx, rawText)
	if err != nil {
		data.AddDiagnostic("fallback", "call failed: "+err.Error())
		return
	}

	merge(data, resp, extractor.Name())
}

// merge applies fallback updates for still-absent fields and appends
// non-duplicate misc notes, then re-runs the full normalizer pass.
func merge(data *types.ParsedApplicationData, resp *Response, source string) {
	added := 0
	for _, key := range sortedUpdateKeys(resp.Updates) {
		field := types.ProfileField(key)
		value := strings.TrimSpace(resp.Updates[key])
		if !field.Valid() || value == "" {
			data.AddDiagnostic("fallback", "ignored unknown field "+key)
			continue
		}
		if data.HasUpdate(field) {
			continue
		}
		if !fields.ValidValue(field, value) {
			data.AddDiagnostic("fallback", "discarded out-of-range value for "+key)
			continue
		}
		data.SetUpdate(field, value, types.ApplicationMetric{
			Field:       field,
			Label:       field.Label(),
			RawValue:    value,
			MappedValue: value,
			Reason:      "Extracted via " + source,
		})
		added++
	}

	for _, note := range resp.Misc {
		note = strings.TrimSpace(note)
		if len(note) < notes.MinEntryLength {
			continue
		}
		if notes.IsDuplicateOf(note, data.Misc) {
			continue
		}
		data.Misc = append(data.Misc, note)
		data.Metrics = append(data.Metrics, types.ApplicationMetric{
			Label:     "Fallback note",
			RawValue:  note,
			Reason:    "Extracted via " + source,
			MiscEntry: note,
		})
	}

	data.Misc = notes.Normalize(data.Misc)
	data.AddDiagnostic("fallback", fmt.Sprintf("merged %d fields from %s", added, source))
}

// sortedUpdateKeys keeps the merge deterministic regardless of map order.
func sortedUpdateKeys(updates map[string]string) []string {
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
