package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"Terminal punctuation untouched",
			"Built a weather station with Raspberry Pi.",
			"Built a weather station with Raspberry Pi.",
		},
		{
			"Cut at late sentence boundary",
			"Finished first in the regional round. Then the natio",
			"Finished first in the regional round.",
		},
		{
			"Trailing fragment dropped and closed",
			"Led the robotics team to the state finals and won th",
			"Led the robotics team to the state finals and won.",
		},
		{
			"Numeric tail is complete",
			"Ranked 12",
			"Ranked 12",
		},
		{
			"Short entry stays open",
			"Debate club xq zt",
			"Debate club",
		},
		{
			"Too much loss returns original",
			"Won xz qrs tvw",
			"Won xz qrs tvw",
		},
		{
			"Complete sentence gets closed",
			"Volunteered weekly at the regional food bank",
			"Volunteered weekly at the regional food bank.",
		},
		{
			"Whitespace only",
			"   ",
			"   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Repair(tt.input))
		})
	}
}

func TestLooksTruncated(t *testing.T) {
	tests := []struct {
		word      string
		truncated bool
	}{
		{"robotics", false},
		{"championship", false},
		{"of", false},
		{"12", false},
		{"150%", false},
		{"th", true},
		{"mgmt", true},
		{"xq", true},
		{"", true},
		{"student", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.truncated, looksTruncated(tt.word), "word %q", tt.word)
		})
	}
}
