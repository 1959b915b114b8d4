package notes

import (
	"sort"
	"strings"
)

// Category tags a note for sort ordering only; it is never persisted.
type Category int

// Categories in descending display priority: testing and academic facts
// surface first.
const (
	CategoryTesting Category = iota
	CategoryAcademics
	CategoryAwards
	CategoryProjects
	CategoryLeadership
	CategoryService
	CategoryWork
	CategoryGeneral
)

// categoryRules are checked in priority order; the first matching keyword
// rule decides the category.
var categoryRules = []struct {
	Category Category
	Keywords []string
}{
	{CategoryTesting, []string{"sat", "act", "psat", "test score", "subject test", "ap exam", "testing"}},
	{CategoryAcademics, []string{"gpa", "class rank", "transcript", "course", "honors", "ap ", "curriculum", "grade", "academ", "education"}},
	{CategoryAwards, []string{"award", "prize", "medal", "finalist", "winner", "champion", "scholarship", "honor roll", "distinction"}},
	{CategoryProjects, []string{"project", "research", "built", "created", "developed", "app", "published", "portfolio"}},
	{CategoryLeadership, []string{"captain", "president", "founder", "leader", "led ", "chair", "editor", "council"}},
	{CategoryService, []string{"volunteer", "community service", "service", "tutoring", "food bank", "shelter"}},
	{CategoryWork, []string{"intern", "job", "employ", "business", "startup", "work"}},
}

// Categorize returns the first matching category for an entry, or general.
func Categorize(entry string) Category {
	lower := strings.ToLower(entry)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return CategoryGeneral
}

// orderEntries applies the final stable sort: category priority first, then
// entry length descending, then original insertion order.
func orderEntries(entries []string) []string {
	type ranked struct {
		entry    string
		category Category
		index    int
	}
	items := make([]ranked, len(entries))
	for i, e := range entries {
		items[i] = ranked{entry: e, category: Categorize(e), index: i}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].category != items[j].category {
			return items[i].category < items[j].category
		}
		if len(items[i].entry) != len(items[j].entry) {
			return len(items[i].entry) > len(items[j].entry)
		}
		return items[i].index < items[j].index
	})

	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.entry
	}
	return out
}
