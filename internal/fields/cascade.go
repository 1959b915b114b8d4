// Package fields extracts scalar profile fields from filtered application
// text using ordered cascades of regular-expression variants.
package fields

import "regexp"

// Variant is one pattern in a cascade. The last capture group carries the
// candidate value.
type Variant struct {
	// Name describes the variant for metric reasons, e.g. "labeled", "inverted".
	Name    string
	Pattern *regexp.Regexp
	// Reject discards an occurrence whose full matched text it matches.
	// Used to keep generic fallbacks away from more specific labels.
	Reject *regexp.Regexp
	// Validate checks the captured value; a nil Validate accepts any match.
	Validate func(string) bool
}

// Match is the winning result of a cascade evaluation.
type Match struct {
	Variant string
	// Raw is the full matched text, Value the validated capture.
	Raw   string
	Value string
}

// Evaluate tries the variants in order and returns the first one whose
// captured value passes validation. Within a variant, occurrences rejected by
// the guard are skipped; a capture that fails validation moves evaluation on
// to the next variant. Later variants are not tried once a valid match wins.
func Evaluate(text string, variants []Variant) (Match, bool) {
	for _, v := range variants {
		for _, m := range v.Pattern.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			if v.Reject != nil && v.Reject.MatchString(m[0]) {
				continue
			}
			value := m[len(m)-1]
			if value == "" {
				continue
			}
			if v.Validate != nil && !v.Validate(value) {
				// Out-of-range capture: fall through to the next variant.
				break
			}
			return Match{Variant: v.Name, Raw: m[0], Value: value}, true
		}
	}
	return Match{}, false
}
