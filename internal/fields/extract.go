package fields

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/jonathan/admissions-parser/internal/types"
)

// Validation ranges for scalar fields.
const (
	SATMin = 400
	SATMax = 1600

	ACTMin = 1
	ACTMax = 36

	ClassSizeMin = 10
	ClassSizeMax = 5000
)

// Result is one extracted scalar field with its provenance.
type Result struct {
	Field  types.ProfileField
	Value  string
	Raw    string
	Reason string
}

var gpaShape = regexp.MustCompile(`^\d\.\d{1,2}$`)

func validGPA(s string) bool {
	return gpaShape.MatchString(s)
}

func intInRange(min, max int) func(string) bool {
	return func(s string) bool {
		n, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		return n >= min && n <= max
	}
}

var weightedGPAVariants = []Variant{
	{
		Name:     "labeled",
		Pattern:  regexp.MustCompile(`(?i)\bweighted\s*GPA\s*(?:\(.*?\))?\s*[:\-]?\s*(\d\.\d{1,2})`),
		Validate: validGPA,
	},
	{
		Name:     "parenthesized",
		Pattern:  regexp.MustCompile(`(?i)\bGPA\s*\(\s*weighted\s*\)\s*[:\-]?\s*(\d\.\d{1,2})`),
		Validate: validGPA,
	},
	{
		Name:     "inverted",
		Pattern:  regexp.MustCompile(`(?i)(\d\.\d{1,2})\s*\(?\s*weighted\s*\)?`),
		Reject:   regexp.MustCompile(`(?i)unweighted`),
		Validate: validGPA,
	},
}

var unweightedGPAVariants = []Variant{
	{
		Name:     "labeled",
		Pattern:  regexp.MustCompile(`(?i)\bunweighted\s*GPA\s*(?:\(.*?\))?\s*[:\-]?\s*(\d\.\d{1,2})`),
		Validate: validGPA,
	},
	{
		Name:     "parenthesized",
		Pattern:  regexp.MustCompile(`(?i)\bGPA\s*\(\s*unweighted\s*\)\s*[:\-]?\s*(\d\.\d{1,2})`),
		Validate: validGPA,
	},
	{
		Name:     "inverted",
		Pattern:  regexp.MustCompile(`(?i)(\d\.\d{1,2})\s*\(?\s*unweighted\s*\)?`),
		Validate: validGPA,
	},
	{
		// Bare "GPA: 3.8" with no weighting qualifier anywhere in the match.
		Name:     "generic",
		Pattern:  regexp.MustCompile(`(?i)(?:[a-z]+\s+)?GPA\s*[:\-]?\s*(\d\.\d{1,2})`),
		Reject:   regexp.MustCompile(`(?i)weighted`),
		Validate: validGPA,
	},
}

var satVariants = []Variant{
	{
		Name:     "labeled",
		Pattern:  regexp.MustCompile(`(?i)\bSAT\s*(?:score|total|composite)?\s*[:\-]?\s*(\d{3,4})\b`),
		Validate: intInRange(SATMin, SATMax),
	},
	{
		Name:     "bracketed",
		Pattern:  regexp.MustCompile(`(?i)\bSAT\s*[\(\[]\s*(?:composite|total)?\s*[:\-]?\s*(\d{3,4})\s*[\)\]]`),
		Validate: intInRange(SATMin, SATMax),
	},
	{
		Name:     "inverted",
		Pattern:  regexp.MustCompile(`(?i)\b(\d{3,4})\s*(?:on\s+the\s+)?SAT\b`),
		Validate: intInRange(SATMin, SATMax),
	},
	{
		Name:     "generic",
		Pattern:  regexp.MustCompile(`(?i)\bSAT\b[^\d\n]{0,20}(\d{3,4})\b`),
		Validate: intInRange(SATMin, SATMax),
	},
}

// ACT patterns stay case-sensitive so prose like "acted" never matches.
var actVariants = []Variant{
	{
		Name:     "labeled",
		Pattern:  regexp.MustCompile(`\bACT\s*(?:[Ss]core|[Cc]omposite)?\s*[:\-]?\s*(\d{1,2})\b`),
		Validate: intInRange(ACTMin, ACTMax),
	},
	{
		Name:     "bracketed",
		Pattern:  regexp.MustCompile(`\bACT\s*[\(\[]\s*(?:[Cc]omposite)?\s*[:\-]?\s*(\d{1,2})\s*[\)\]]`),
		Validate: intInRange(ACTMin, ACTMax),
	},
	{
		Name:     "inverted",
		Pattern:  regexp.MustCompile(`\b(\d{1,2})\s*(?:on\s+the\s+)?ACT\b`),
		Validate: intInRange(ACTMin, ACTMax),
	},
	{
		Name:     "generic",
		Pattern:  regexp.MustCompile(`\bACT\b[^\d\n]{0,20}(\d{1,2})\b`),
		Validate: intInRange(ACTMin, ACTMax),
	},
}

var classSizeVariants = []Variant{
	{
		Name:     "labeled",
		Pattern:  regexp.MustCompile(`(?i)\bclass\s*size\s*(?:of)?\s*[:\-]?\s*(\d{2,4})\b`),
		Validate: intInRange(ClassSizeMin, ClassSizeMax),
	},
	{
		Name:     "graduating",
		Pattern:  regexp.MustCompile(`(?i)\b(?:graduating\s+)?class\s+of\s+(\d{2,4})\s+students\b`),
		Validate: intInRange(ClassSizeMin, ClassSizeMax),
	},
}

// Extract runs every scalar-field cascade over the filtered text and returns
// the results in a fixed field order. Fields with no valid match are simply
// absent; that is not an error.
func Extract(text string) []Result {
	var results []Result

	scalar := []struct {
		field    types.ProfileField
		variants []Variant
	}{
		{types.FieldGPAWeighted, weightedGPAVariants},
		{types.FieldGPAUnweighted, unweightedGPAVariants},
		{types.FieldSAT, satVariants},
		{types.FieldACT, actVariants},
		{types.FieldClassSize, classSizeVariants},
	}

	for _, s := range scalar {
		if m, ok := Evaluate(text, s.variants); ok {
			results = append(results, Result{
				Field:  s.field,
				Value:  m.Value,
				Raw:    m.Raw,
				Reason: fmt.Sprintf("matched %s pattern", m.Variant),
			})
		}
	}

	results = append(results, extractClassRank(text)...)
	results = append(results, extractCourseCounts(text)...)

	return firstPerField(results)
}

// firstPerField keeps only the earliest result for each field, so a labeled
// class size is not displaced by one derived from a rank fraction.
func firstPerField(results []Result) []Result {
	seen := make(map[types.ProfileField]bool, len(results))
	out := results[:0]
	for _, r := range results {
		if seen[r.Field] {
			continue
		}
		seen[r.Field] = true
		out = append(out, r)
	}
	return out
}

var (
	rankFraction = regexp.MustCompile(`(?i)\b(?:class\s*)?rank(?:ed)?\s*[:\-]?\s*#?\s*(\d{1,4})\s*(?:/|of\b|out\s+of\b)\s*(\d{2,4})\b`)
	rankTopPct   = regexp.MustCompile(`(?i)\btop\s*(\d{1,2})\s*%`)
	rankExplicit = regexp.MustCompile(`(?i)\bclass\s*rank\s*[:\-]?\s*(\d{1,2})\s*%`)
)

// extractClassRank tries the three supported rank shapes in priority order:
// a rank/size fraction (converted to a rounded percentile), "Top N%"
// phrasing, then an explicit percentile.
func extractClassRank(text string) []Result {
	if m := rankFraction.FindStringSubmatch(text); m != nil {
		rank, err1 := strconv.Atoi(m[1])
		size, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && size >= ClassSizeMin && size <= ClassSizeMax && rank >= 1 && rank <= size {
			pct := percentileFromFraction(rank, size)
			return []Result{{
				Field:  types.FieldClassRankPercentile,
				Value:  strconv.Itoa(pct),
				Raw:    m[0],
				Reason: fmt.Sprintf("rank %d of %d is roughly top %d%%", rank, size, pct),
			}}
		}
	}

	if m := rankTopPct.FindStringSubmatch(text); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct >= 1 && pct <= 99 {
			return []Result{{
				Field:  types.FieldClassRankPercentile,
				Value:  strconv.Itoa(pct),
				Raw:    m[0],
				Reason: "matched top-percent phrasing",
			}}
		}
	}

	if m := rankExplicit.FindStringSubmatch(text); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct >= 1 && pct <= 99 {
			return []Result{{
				Field:  types.FieldClassRankPercentile,
				Value:  strconv.Itoa(pct),
				Raw:    m[0],
				Reason: "matched explicit percentile",
			}}
		}
	}

	return nil
}

// percentileFromFraction converts a rank/size pair to a rounded percentile,
// clamped to [1,99] so a valedictorian still reads as top 1%.
func percentileFromFraction(rank, size int) int {
	pct := int(math.Round(float64(rank) / float64(size) * 100))
	if pct < 1 {
		pct = 1
	}
	if pct > 99 {
		pct = 99
	}
	return pct
}
