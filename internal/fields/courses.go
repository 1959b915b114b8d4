package fields

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/admissions-parser/internal/types"
)

// AP and Honors counts are set cardinalities over distinct course names, not
// raw pattern hit counts, so "AP Physics" mentioned five times still counts
// once.

var (
	apCourse = regexp.MustCompile(`\bAP\s+([A-Z][A-Za-z&]*(?:\s+[A-Z&0-9][A-Za-z&0-9]*){0,3})`)
	apExam   = regexp.MustCompile(`(?i)\bAP\s+Exam\s*:\s*([A-Za-z][A-Za-z&\s]{2,40})`)

	honorsCourse = regexp.MustCompile(`\b[Hh]onors\s+([A-Z][A-Za-z&]*(?:\s+[A-Z&][A-Za-z&]*){0,2})`)
)

// courseStopwords are trailing or standalone tokens that are part of the
// surrounding sentence, not the course name.
var courseStopwords = map[string]bool{
	"exam": true, "exams": true, "course": true, "courses": true,
	"class": true, "classes": true, "test": true, "tests": true,
	"score": true, "scores": true, "and": true, "with": true,
	"student": true, "scholar": true, "program": true, "society": true,
	"include": true, "including": true, "in": true, "for": true,
}

func extractCourseCounts(text string) []Result {
	var results []Result

	apSet := collectCourseNames(text, apCourse, apExam)
	if len(apSet) > 0 {
		results = append(results, Result{
			Field:  types.FieldAPCount,
			Value:  strconv.Itoa(len(apSet)),
			Raw:    strings.Join(sortedKeys(apSet), ", "),
			Reason: fmt.Sprintf("%d distinct AP courses", len(apSet)),
		})
	}

	honorsSet := collectCourseNames(text, honorsCourse)
	if len(honorsSet) > 0 {
		results = append(results, Result{
			Field:  types.FieldHonorsCount,
			Value:  strconv.Itoa(len(honorsSet)),
			Raw:    strings.Join(sortedKeys(honorsSet), ", "),
			Reason: fmt.Sprintf("%d distinct honors courses", len(honorsSet)),
		})
	}

	return results
}

// collectCourseNames gathers the set of normalized course names matched by
// the given patterns. Keys preserve first-seen casing for display; the set is
// keyed case-insensitively.
func collectCourseNames(text string, patterns ...*regexp.Regexp) map[string]string {
	set := make(map[string]string)
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			name := normalizeCourseName(m[1])
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, ok := set[key]; !ok {
				set[key] = name
			}
		}
	}
	return set
}

// normalizeCourseName trims stopwords and punctuation from the tail of a
// captured course name. An all-stopword capture normalizes to empty.
func normalizeCourseName(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for len(words) > 0 {
		last := strings.ToLower(strings.Trim(words[len(words)-1], ".,;:"))
		if !courseStopwords[last] {
			break
		}
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return ""
	}
	for i, w := range words {
		words[i] = strings.Trim(w, ".,;:")
	}
	return strings.Join(words, " ")
}

func sortedKeys(set map[string]string) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, set[k])
	}
	sort.Strings(keys)
	return keys
}
