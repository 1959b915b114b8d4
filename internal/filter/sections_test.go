package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludeSections(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKept    []string
		wantDropped []string
	}{
		{
			name: "Essay section removed until next heading",
			input: strings.Join([]string{
				"Academics:",
				"AP Physics and AP Chemistry",
				"Essay:",
				"I grew up in a small town dreaming of robots.",
				"Every summer I rebuilt the same engine.",
				"Activities:",
				"Robotics team captain",
			}, "\n"),
			wantKept:    []string{"AP Physics", "Robotics team captain", "Activities:"},
			wantDropped: []string{"small town", "rebuilt the same engine"},
		},
		{
			name: "Family section removed",
			input: strings.Join([]string{
				"Family Information:",
				"Mother works as a nurse at County General.",
				"Testing:",
				"SAT: 1480",
			}, "\n"),
			wantKept:    []string{"SAT: 1480"},
			wantDropped: []string{"nurse"},
		},
		{
			name: "Inline parent line dropped outside any section",
			input: strings.Join([]string{
				"SAT: 1450",
				"Parent: Jane Doe works at Acme Corp.",
				"ACT: 33",
			}, "\n"),
			wantKept:    []string{"SAT: 1450", "ACT: 33"},
			wantDropped: []string{"Jane Doe"},
		},
		{
			name: "Unclosed essay section redacts to end of document",
			input: strings.Join([]string{
				"Activities:",
				"Debate team",
				"Personal Statement:",
				"This essay continues to the very end.",
				"And so does this line.",
			}, "\n"),
			wantKept:    []string{"Debate team"},
			wantDropped: []string{"very end", "so does this line"},
		},
		{
			name: "Prose mentioning an essay is not a heading",
			input: strings.Join([]string{
				"Wrote an essay for the local paper about robotics outreach programs",
			}, "\n"),
			wantKept: []string{"local paper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExcludeSections(tt.input)
			for _, want := range tt.wantKept {
				assert.Contains(t, got, want)
			}
			for _, dropped := range tt.wantDropped {
				assert.NotContains(t, got, dropped)
			}
		})
	}
}

func TestExcludeSectionsEmptyInput(t *testing.T) {
	assert.Equal(t, "", ExcludeSections(""))
}

func TestLooksLikeHeading(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"Colon heading", "Essay:", true},
		{"Numbered heading", "3. Testing", true},
		{"Markdown heading", "## Activities", true},
		{"Long prose line", strings.Repeat("word ", 30), false},
		{"Too many words with colon", "one two three four five six seven eight nine:", false},
		{"Empty line", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, looksLikeHeading(tt.line))
		})
	}
}

func TestContainsFamilyContent(t *testing.T) {
	assert.True(t, ContainsFamilyContent("My mother drove me to practice"))
	assert.True(t, ContainsFamilyContent("Guardian contact information"))
	assert.False(t, ContainsFamilyContent("Led the robotics team to state finals"))
}
