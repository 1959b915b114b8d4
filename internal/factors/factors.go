// Package factors derives holistic 2-10 scores for soft profile factors from
// keyword and structural counts in the filtered text. Scores are weaker than
// anything the structured extractor found; the pipeline only applies a factor
// when the field is still empty.
package factors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/admissions-parser/internal/ingestion"
	"github.com/jonathan/admissions-parser/internal/types"
)

// Result is one inferred factor score.
type Result struct {
	Field  types.ProfileField
	Score  int
	Reason string
}

// thresholds maps descending occurrence counts to scores 10/8/6/4; anything
// below the last threshold scores 2.
type thresholds [4]int

func (t thresholds) score(count int) int {
	scores := [4]int{10, 8, 6, 4}
	for i, min := range t {
		if count >= min {
			return scores[i]
		}
	}
	return 2
}

type keywordFactor struct {
	Field      types.ProfileField
	Keywords   []string
	Thresholds thresholds
}

var keywordFactors = []keywordFactor{
	{
		Field: types.FieldLeadership,
		Keywords: []string{
			"captain", "president", "founder", " led ", "leader", "chair",
			"head of", "director", "vice president", "treasurer", "secretary",
			"editor-in-chief",
		},
		Thresholds: thresholds{6, 4, 2, 1},
	},
	{
		Field: types.FieldAwards,
		Keywords: []string{
			"award", "honor roll", "prize", "medal", "winner", "finalist",
			"champion", "scholarship", "distinction", "published", "publication",
		},
		Thresholds: thresholds{8, 5, 3, 1},
	},
	{
		Field: types.FieldPassionProjects,
		Keywords: []string{
			"project", "built", "created", "designed", "developed", "launched",
			"self-taught", "portfolio", "blog", "app",
		},
		Thresholds: thresholds{6, 4, 2, 1},
	},
	{
		Field: types.FieldBusinessVentures,
		Keywords: []string{
			"business", "startup", "venture", "entrepreneur", "founded",
			"llc", "revenue", "customers", "etsy", "shopify",
		},
		Thresholds: thresholds{5, 3, 2, 1},
	},
	{
		Field: types.FieldResearch,
		Keywords: []string{
			"research", "laboratory", "lab assistant", "publication",
			"published", "professor", "thesis", "data analysis",
		},
		Thresholds: thresholds{5, 3, 2, 1},
	},
	{
		Field: types.FieldPortfolio,
		Keywords: []string{
			"portfolio", "audition", "recital", "exhibition", "gallery",
			"conservatory", "juried", "showcase", "ensemble",
		},
		Thresholds: thresholds{4, 3, 2, 1},
	},
}

var volunteerKeywords = []string{
	"volunteer", "volunteering", "community service", "service project",
	"food bank", "shelter", "habitat for humanity", "tutoring",
}

var volunteerThresholds = thresholds{6, 4, 2, 1}

var extracurricularThresholds = thresholds{15, 10, 6, 3}

var volunteerHours = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,4})\s*\+?\s*(?:volunteer|service|community\s+service)\s*hours`),
	regexp.MustCompile(`(?i)(?:volunteer|service)[^.\n]{0,30}?(\d{1,4})\s*\+?\s*hours`),
	regexp.MustCompile(`(?i)(\d{1,4})\s*\+?\s*hours\s+(?:of\s+)?(?:volunteer|community\s+service|service)`),
}

// Infer counts keyword and structural occurrences in the filtered text and
// maps them to scores. A factor with zero evidence produces no result.
func Infer(text string) []Result {
	var results []Result
	lower := strings.ToLower(text)

	if bullets := countBullets(text); bullets > 0 {
		results = append(results, Result{
			Field:  types.FieldExtracurricular,
			Score:  extracurricularThresholds.score(bullets),
			Reason: fmt.Sprintf("%d activity bullet lines", bullets),
		})
	}

	for _, f := range keywordFactors {
		count := countOccurrences(lower, f.Keywords)
		if count == 0 {
			continue
		}
		results = append(results, Result{
			Field:  f.Field,
			Score:  f.Thresholds.score(count),
			Reason: fmt.Sprintf("%d keyword mentions", count),
		})
	}

	results = append(results, inferVolunteer(text, lower)...)

	return results
}

// inferVolunteer prefers an explicit hour figure over raw mention counts.
func inferVolunteer(text, lower string) []Result {
	if hours, raw, ok := maxVolunteerHours(text); ok {
		return []Result{{
			Field:  types.FieldVolunteerWork,
			Score:  volunteerHoursScore(hours),
			Reason: fmt.Sprintf("%d volunteer hours (%q)", hours, raw),
		}}
	}

	count := countOccurrences(lower, volunteerKeywords)
	if count == 0 {
		return nil
	}
	return []Result{{
		Field:  types.FieldVolunteerWork,
		Score:  volunteerThresholds.score(count),
		Reason: fmt.Sprintf("%d service mentions", count),
	}}
}

// maxVolunteerHours returns the largest explicit hour figure found, if any.
func maxVolunteerHours(text string) (int, string, bool) {
	best := 0
	raw := ""
	for _, re := range volunteerHours {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 || n > 9999 {
				continue
			}
			if n > best {
				best = n
				raw = m[0]
			}
		}
	}
	return best, raw, best > 0
}

// volunteerHoursScore maps explicit hours to a score on its own table.
func volunteerHoursScore(hours int) int {
	switch {
	case hours >= 250:
		return 10
	case hours >= 150:
		return 8
	case hours >= 75:
		return 6
	case hours >= 25:
		return 4
	default:
		return 2
	}
}

func countBullets(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if ingestion.IsBulletLine(line) {
			count++
		}
	}
	return count
}

func countOccurrences(lower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		count += strings.Count(lower, kw)
	}
	return count
}
