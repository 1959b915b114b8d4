// Package harvest pulls named sections and keyword-triggered highlight lines
// out of filtered application text. Everything it returns is a candidate
// note; the notes package decides what survives.
package harvest

import (
	"regexp"
	"strings"
)

const (
	defaultMinLineLen  = 10
	defaultMaxEntries  = 6
	freeSectionMaxLen  = 1200
	freeSectionMaxRows = 8
)

// sectionSpec describes one named section to harvest.
type sectionSpec struct {
	Name       string
	Heading    *regexp.Regexp
	MaxEntries int
	// Exclude drops lines matching it, e.g. parent mentions inside Education.
	Exclude *regexp.Regexp
}

var nextNumberedHeading = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+\S`)

var parentLine = regexp.MustCompile(`(?i)\b(parent|guardian|mother|father)\b`)

var numberedSections = []sectionSpec{
	{
		Name:       "Testing",
		Heading:    regexp.MustCompile(`(?im)^\s*\d+[.)]\s*(?:Testing|Test Scores|Standardized Testing)\s*:?\s*$`),
		MaxEntries: defaultMaxEntries,
	},
	{
		Name:       "Education",
		Heading:    regexp.MustCompile(`(?im)^\s*\d+[.)]\s*(?:Education|Academics|Academic Profile)\s*:?\s*$`),
		MaxEntries: defaultMaxEntries,
		Exclude:    parentLine,
	},
	{
		Name:       "Activities",
		Heading:    regexp.MustCompile(`(?im)^\s*\d+[.)]\s*(?:Activities|Extracurriculars|Extracurricular Activities)\s*:?\s*$`),
		MaxEntries: defaultMaxEntries,
	},
	{
		Name:       "Honors & Awards",
		Heading:    regexp.MustCompile(`(?im)^\s*\d+[.)]\s*(?:Honors\s*(?:&|and)\s*Awards|Awards|Honors)\s*:?\s*$`),
		MaxEntries: defaultMaxEntries,
	},
	{
		Name:       "Courses",
		Heading:    regexp.MustCompile(`(?im)^\s*\d+[.)]\s*(?:Courses|Coursework|Course\s*Work)\s*:?\s*$`),
		MaxEntries: defaultMaxEntries,
	},
	{
		Name:       "Additional Information",
		Heading:    regexp.MustCompile(`(?im)^\s*\d+[.)]\s*(?:Additional\s*Information|Additional\s*Info|Other)\s*:?\s*$`),
		MaxEntries: defaultMaxEntries,
	},
}

// freeSections are colon-headed sections captured until the next blank line,
// truncated to a length limit, for documents that do not number their
// headings.
var freeSections = []struct {
	Name    string
	Heading *regexp.Regexp
	MaxLen  int
	MaxRows int
}{
	{"Activities", regexp.MustCompile(`(?i)\bActivities\s*:?\s*\n`), freeSectionMaxLen, freeSectionMaxRows},
	{"Honors & Awards", regexp.MustCompile(`(?i)\bHonors\s*(?:&|and)\s*Awards\s*:?\s*\n`), freeSectionMaxLen, freeSectionMaxRows},
	{"Courses", regexp.MustCompile(`(?i)\bCourse(?:s|work)\s*:?\s*\n`), freeSectionMaxLen, freeSectionMaxRows},
	{"Additional Information", regexp.MustCompile(`(?i)\bAdditional\s*Information\s*:?\s*\n`), freeSectionMaxLen, freeSectionMaxRows},
	{"Testing", regexp.MustCompile(`(?i)\bTest\s*Scores?\s*:?\s*\n`), 600, 4},
}

var blankLine = regexp.MustCompile(`\n\s*\n`)

var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•·◦▪]|\d+[.)])\s*`)

// Sections extracts named-section candidate notes, each prefixed with the
// section name for traceability.
func Sections(text string) []string {
	var candidates []string
	seen := make(map[string]bool)

	for _, spec := range numberedSections {
		body := numberedSectionBody(text, spec.Heading)
		if body == "" {
			continue
		}
		for _, line := range sectionLines(body, spec.MaxEntries, spec.Exclude) {
			entry := spec.Name + ": " + line
			if !seen[entry] {
				seen[entry] = true
				candidates = append(candidates, entry)
			}
		}
	}

	for _, spec := range freeSections {
		body := freeSectionBody(text, spec.Heading, spec.MaxLen)
		if body == "" {
			continue
		}
		for _, line := range sectionLines(body, spec.MaxRows, nil) {
			entry := spec.Name + ": " + line
			if !seen[entry] {
				seen[entry] = true
				candidates = append(candidates, entry)
			}
		}
	}

	return candidates
}

// freeSectionBody returns the text between a matched free-form heading and
// the next blank line (or end of document), truncated to maxLen.
func freeSectionBody(text string, heading *regexp.Regexp, maxLen int) string {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	if b := blankLine.FindStringIndex(rest); b != nil {
		rest = rest[:b[0]]
	}
	if len(rest) > maxLen {
		rest = rest[:maxLen]
	}
	return rest
}

// numberedSectionBody returns the text between a matched numbered heading
// and the next numbered heading (or end of document).
func numberedSectionBody(text string, heading *regexp.Regexp) string {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	if next := nextNumberedHeading.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	if len(rest) > freeSectionMaxLen {
		rest = rest[:freeSectionMaxLen]
	}
	return rest
}

// sectionLines splits a section body into candidate lines: bullet and number
// prefixes stripped, short lines dropped, excluded lines filtered, capped at
// max entries.
func sectionLines(body string, max int, exclude *regexp.Regexp) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		line = bulletPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if len(line) < defaultMinLineLen {
			continue
		}
		if exclude != nil && exclude.MatchString(line) {
			continue
		}
		out = append(out, line)
		if len(out) >= max {
			break
		}
	}
	return out
}
