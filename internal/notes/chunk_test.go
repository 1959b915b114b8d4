package notes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentence(n int) string {
	return strings.Repeat("alpha ", n) + "omega."
}

func TestBreakdownChunksPassesShortEntries(t *testing.T) {
	entries := []string{"Varsity soccer, four years"}
	assert.Equal(t, entries, breakdownChunks(entries))
}

func TestBreakdownChunksSplitsOnSentences(t *testing.T) {
	// Four ~126-char sentences join into one over-long entry that splits
	// into two pieces of two sentences each.
	long := strings.Join([]string{sentence(20), sentence(20), sentence(20), sentence(20)}, " ")
	require.Greater(t, len(long), maxEntryLength)

	got := breakdownChunks([]string{long})

	require.Len(t, got, 2)
	for _, piece := range got {
		assert.LessOrEqual(t, len(piece), maxEntryLength)
		assert.True(t, strings.HasSuffix(piece, "."))
	}
}

func TestBreakdownChunksWordPacksBoundaryFreeText(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 80))
	require.Greater(t, len(long), maxEntryLength)

	got := breakdownChunks([]string{long})

	require.GreaterOrEqual(t, len(got), 2)
	for _, piece := range got {
		assert.LessOrEqual(t, len(piece), maxEntryLength)
	}
}

func TestSplitSegments(t *testing.T) {
	got := splitSegments("First part. Second part; third part - fourth part")

	assert.Equal(t, []string{
		"First part.",
		"Second part;",
		"third part",
		"fourth part",
	}, got)
}

func TestPackSegments(t *testing.T) {
	segments := []string{"aaaa", "bbbb", "cccc", "dddd"}

	// Limit 9 fits two four-char segments plus the joining space.
	got := packSegments(segments, 9)
	assert.Equal(t, []string{"aaaa bbbb", "cccc dddd"}, got)

	// A segment over the limit still becomes its own piece.
	got = packSegments([]string{"aaaa", "eeeeeeeeeeee"}, 9)
	assert.Equal(t, []string{"aaaa", "eeeeeeeeeeee"}, got)
}

func TestPackWords(t *testing.T) {
	got := packWords("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, got)
}
