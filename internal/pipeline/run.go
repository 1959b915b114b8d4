// Package pipeline orchestrates the admissions application parsing stages in
// their fixed sequence: clean, filter, extract, harvest, infer, normalize,
// and optionally fall back to AI extraction.
package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/admissions-parser/internal/factors"
	"github.com/jonathan/admissions-parser/internal/fallback"
	"github.com/jonathan/admissions-parser/internal/fields"
	"github.com/jonathan/admissions-parser/internal/filter"
	"github.com/jonathan/admissions-parser/internal/harvest"
	"github.com/jonathan/admissions-parser/internal/ingestion"
	"github.com/jonathan/admissions-parser/internal/notes"
	"github.com/jonathan/admissions-parser/internal/types"
)

// Options configures a single parse invocation.
type Options struct {
	// EnableFallback allows one outbound AI extraction call when critical
	// fields are missing. Requires Extractor.
	EnableFallback bool
	// Extractor performs the fallback call; ignored unless EnableFallback.
	Extractor fallback.Extractor
}

// Parse converts raw extracted application text into a structured result.
// It never fails: malformed or empty input produces an empty result, and
// fallback errors surface only as diagnostics.
func Parse(ctx context.Context, rawText string, opts Options) *types.ParsedApplicationData {
	data := types.NewParsedApplicationData()

	if strings.TrimSpace(rawText) == "" {
		data.AddDiagnostic("input", "empty document, nothing to parse")
		return data
	}

	cleaned := ingestion.CleanText(rawText)
	data.AddDiagnostic("ingestion", fmt.Sprintf("cleaned %d chars to %d", len(rawText), len(cleaned)))

	filtered := filter.ExcludeSections(cleaned)
	if len(filtered) != len(cleaned) {
		data.AddDiagnostic("filter", fmt.Sprintf("excluded %d chars of essay/family content", len(cleaned)-len(filtered)))
	}

	applyFieldResults(data, fields.Extract(filtered))

	candidates := harvest.Sections(filtered)
	candidates = append(candidates, harvest.Keywords(filtered)...)
	data.AddDiagnostic("harvest", fmt.Sprintf("%d candidate notes", len(candidates)))
	for _, c := range candidates {
		data.Metrics = append(data.Metrics, types.ApplicationMetric{
			Label:     "Highlight",
			RawValue:  c,
			MiscEntry: c,
		})
	}

	applyFactorResults(data, factors.Infer(filtered))

	data.Misc = notes.Normalize(candidates)
	data.AddDiagnostic("notes", fmt.Sprintf("%d notes after dedup", len(data.Misc)))

	if opts.EnableFallback && opts.Extractor != nil {
		// The fallback gets the original unfiltered text so the remote
		// service has maximum context.
		fallback.Run(ctx, rawText, data, opts.Extractor)
	}

	return data
}

// applyFieldResults writes structured extraction results into updates.
func applyFieldResults(data *types.ParsedApplicationData, results []fields.Result) {
	for _, r := range results {
		data.SetUpdate(r.Field, r.Value, types.ApplicationMetric{
			Field:       r.Field,
			Label:       r.Field.Label(),
			RawValue:    r.Raw,
			MappedValue: r.Value,
			Reason:      r.Reason,
		})
	}
	data.AddDiagnostic("fields", fmt.Sprintf("%d structured fields extracted", len(results)))
}

// applyFactorResults writes inferred soft-factor scores, but only where the
// structured extractor produced nothing for the field.
func applyFactorResults(data *types.ParsedApplicationData, results []factors.Result) {
	applied := 0
	for _, r := range results {
		if data.HasUpdate(r.Field) {
			continue
		}
		value := strconv.Itoa(r.Score)
		data.SetUpdate(r.Field, value, types.ApplicationMetric{
			Field:       r.Field,
			Label:       r.Field.Label(),
			RawValue:    r.Reason,
			MappedValue: value,
			Reason:      "inferred: " + r.Reason,
		})
		applied++
	}
	data.AddDiagnostic("factors", fmt.Sprintf("%d soft factors inferred", applied))
}
