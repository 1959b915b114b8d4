package harvest

import "strings"

const maxLinesPerCategory = 4

// highlightCategory is one keyword-triggered capture rule scanned line by line.
type highlightCategory struct {
	Label    string
	Keywords []string
}

var highlightCategories = []highlightCategory{
	{"Internship", []string{"intern", "internship", "apprenticeship", "shadowing"}},
	{"Research", []string{"research", "laboratory", "lab assistant", "published", "publication", "thesis"}},
	{"Competition", []string{"olympiad", "competition", "tournament", "hackathon", "finalist", "championship", "science fair"}},
	{"Summer Program", []string{"summer program", "summer institute", "summer academy", "pre-college", "governor's school"}},
	{"Leadership", []string{"captain", "president", "founder", "editor-in-chief", "chair", "led a team", "student council", "class representative"}},
	{"Service", []string{"volunteer", "community service", "service hours", "food bank", "shelter", "tutoring", "fundraiser"}},
	{"Entrepreneurship", []string{"startup", "business", "entrepreneur", "founded", "etsy", "revenue", "customers"}},
}

// Keywords scans lines for category keyword hits and keeps up to four
// matching lines per category, each prefixed with the category label.
func Keywords(text string) []string {
	lines := strings.Split(text, "\n")
	var candidates []string

	for _, cat := range highlightCategories {
		count := 0
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if len(trimmed) < defaultMinLineLen {
				continue
			}
			if !matchesAny(trimmed, cat.Keywords) {
				continue
			}
			candidates = append(candidates, cat.Label+": "+trimmed)
			count++
			if count >= maxLinesPerCategory {
				break
			}
		}
	}

	return candidates
}

func matchesAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
