// Package filter removes text spans that must never contribute to structured
// fields or misc notes: essays, personal statements, and parent/guardian or
// family information blocks.
package filter

import (
	"regexp"
	"strings"
)

// scanState is the two-state machine driving the line fold.
type scanState int

const (
	stateNormal scanState = iota
	stateSkipping
)

const (
	maxHeadingLength = 120
	maxHeadingWords  = 8
)

var (
	numberedHeading = regexp.MustCompile(`^\s*\d+[.)]\s+\S`)
	markdownHeading = regexp.MustCompile(`^\s*#{1,4}\s+\S`)

	essayVocab = regexp.MustCompile(`(?i)\b(essay|personal statement|personal narrative|writing supplement|supplemental essay|why (us|this college|this school)|statement of purpose)\b`)
	familyVocab = regexp.MustCompile(`(?i)\b(parent|guardian|mother|father|family|household|sibling|legal guardian|step ?(mother|father))\b`)

	inlineFamilyPrefix = regexp.MustCompile(`(?i)^\s*(parent|guardian|mother|father)\s*:`)
	familyMention      = regexp.MustCompile(`(?i)\b(parent|guardian|mother|father)\b`)
)

// ExcludeSections drops essay and parent/guardian/family sections from the
// text. The scan keeps a skipping state: a heading-shaped line matching the
// exclusion vocabulary starts a skip, and the next heading-shaped line that
// does not match it ends the skip. If no closing heading appears, the rest of
// the document stays redacted.
func ExcludeSections(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	state := stateNormal

	for _, line := range lines {
		// Inline family lines are dropped regardless of section state.
		if inlineFamilyPrefix.MatchString(line) {
			continue
		}

		heading := looksLikeHeading(line)
		excluded := heading && matchesExclusionVocab(line)

		switch state {
		case stateNormal:
			if excluded {
				state = stateSkipping
				continue
			}
			kept = append(kept, line)
		case stateSkipping:
			if heading && !matchesExclusionVocab(line) {
				state = stateNormal
				kept = append(kept, line)
			}
		}
	}

	return strings.Join(kept, "\n")
}

// looksLikeHeading reports whether a line has the shape of a short section
// heading: bounded length and word count, ending with a colon or shaped like
// a numbered or markdown heading.
func looksLikeHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeadingLength {
		return false
	}
	if len(strings.Fields(trimmed)) > maxHeadingWords {
		return false
	}
	if strings.HasSuffix(trimmed, ":") {
		return true
	}
	return numberedHeading.MatchString(trimmed) || markdownHeading.MatchString(trimmed)
}

func matchesExclusionVocab(line string) bool {
	return essayVocab.MatchString(line) || familyVocab.MatchString(line)
}

// ContainsFamilyContent reports whether a cleaned note still mentions a
// parent or guardian. Used by the note normalizer as defense in depth.
func ContainsFamilyContent(s string) bool {
	return familyMention.MatchString(s)
}
