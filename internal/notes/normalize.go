// Package notes collapses harvested candidate strings into the final clean,
// ordered, duplicate-free misc note list. Every stage is defensive: a stage
// that cannot improve an entry returns it unchanged, and only clearly invalid
// entries (too short, family content) are discarded outright.
package notes

import (
	"regexp"
	"strings"

	"github.com/jonathan/admissions-parser/internal/filter"
)

// MinEntryLength is the shortest note worth surfacing.
const MinEntryLength = 10

// Normalize applies the full cleanup sequence to candidate notes and returns
// the final misc list in display order.
func Normalize(candidates []string) []string {
	entries := cleanCandidates(candidates)
	entries = dedupeExact(entries)
	entries = breakdownChunks(entries)
	entries = dedupeSimilar(entries)
	entries = repairAll(entries)
	entries = dropFamilyContent(entries)
	// Chunking and repair can reintroduce duplicates; run both passes again.
	entries = dedupeExact(entries)
	entries = dedupeSimilar(entries)
	return orderEntries(entries)
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// categoryPrefix matches traceability prefixes added by the harvester,
	// e.g. "Testing: " or "Honors & Awards: ".
	categoryPrefix = regexp.MustCompile(`^[A-Z][A-Za-z&' ]{2,24}:\s+`)
	bulletGlyphs   = regexp.MustCompile(`[•·◦▪]`)
)

var smartQuoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
)

// cleanCandidates normalizes whitespace and punctuation and drops entries too
// short to be useful.
func cleanCandidates(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = smartQuoteReplacer.Replace(c)
		c = bulletGlyphs.ReplaceAllString(c, " ")
		c = whitespaceRun.ReplaceAllString(strings.TrimSpace(c), " ")
		if len(c) < MinEntryLength {
			continue
		}
		out = append(out, c)
	}
	return out
}

// normalizeKey builds the case-insensitive comparison key for an entry:
// category prefix stripped, smart quotes and bullets flattened, trailing
// punctuation removed, whitespace collapsed.
func normalizeKey(entry string) string {
	key := categoryPrefix.ReplaceAllString(entry, "")
	key = smartQuoteReplacer.Replace(key)
	key = bulletGlyphs.ReplaceAllString(key, " ")
	key = strings.ToLower(strings.TrimSpace(key))
	key = whitespaceRun.ReplaceAllString(key, " ")
	key = strings.TrimRight(key, ".,;:!? ")
	return key
}

// dedupeExact removes exact duplicates by normalized key. Because the key is
// stripped of trailing punctuation, "X." and "X" collapse to one entry; the
// earlier entry wins.
func dedupeExact(entries []string) []string {
	seen := make(map[string]bool, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		key := normalizeKey(e)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// dropFamilyContent discards entries that still mention a parent or guardian
// after all cleanup. Defense in depth behind the section filter.
func dropFamilyContent(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if filter.ContainsFamilyContent(e) {
			continue
		}
		if len(strings.TrimSpace(e)) < MinEntryLength {
			continue
		}
		out = append(out, e)
	}
	return out
}
