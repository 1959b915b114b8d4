package notes

import "strings"

const (
	// maxEntryLength is the longest note kept whole.
	maxEntryLength = 300
	// fallbackGroupLength bounds the sentence groups used when boundary
	// splitting cannot produce pieces under maxEntryLength.
	fallbackGroupLength = 250
)

// breakdownChunks splits any over-long entry on sentence and bullet
// boundaries into pieces, truncation-repairing each piece before keeping it.
// Entries at or under the limit pass through untouched.
func breakdownChunks(entries []string) []string {
	var out []string
	for _, e := range entries {
		if len(e) <= maxEntryLength {
			out = append(out, e)
			continue
		}
		for _, piece := range splitEntry(e) {
			piece = Repair(piece)
			if len(strings.TrimSpace(piece)) >= MinEntryLength {
				out = append(out, piece)
			}
		}
	}
	return out
}

// splitEntry breaks an over-long entry into pieces ≤ maxEntryLength on
// segment boundaries, falling back to tighter sentence groups (and finally
// raw word packing) when a segment alone exceeds the limit.
func splitEntry(entry string) []string {
	segments := splitSegments(entry)

	pieces := packSegments(segments, maxEntryLength)
	if allWithin(pieces, maxEntryLength) {
		return pieces
	}

	pieces = packSegments(segments, fallbackGroupLength)
	var out []string
	for _, p := range pieces {
		if len(p) <= fallbackGroupLength {
			out = append(out, p)
			continue
		}
		out = append(out, packWords(p, fallbackGroupLength)...)
	}
	return out
}

// segmentBreaks are the boundary markers chunking splits on, checked in
// order at each position.
var segmentBreaks = []string{". ", "! ", "? ", "; ", " - ", " | "}

// splitSegments cuts text into sentence/bullet segments, keeping terminal
// punctuation with the preceding segment.
func splitSegments(text string) []string {
	var segments []string
	remaining := text
	for remaining != "" {
		cut := -1
		cutLen := 0
		for _, brk := range segmentBreaks {
			if idx := strings.Index(remaining, brk); idx != -1 && (cut == -1 || idx < cut) {
				cut = idx
				cutLen = len(brk)
			}
		}
		if cut == -1 {
			segments = append(segments, strings.TrimSpace(remaining))
			break
		}
		head := strings.TrimSpace(remaining[:cut+1])
		if head != "" {
			segments = append(segments, head)
		}
		remaining = remaining[cut+cutLen:]
	}
	return segments
}

// packSegments greedily joins consecutive segments into pieces up to limit.
// A single segment over the limit becomes its own piece.
func packSegments(segments []string, limit int) []string {
	var pieces []string
	var current strings.Builder
	for _, seg := range segments {
		if current.Len() == 0 {
			current.WriteString(seg)
			continue
		}
		if current.Len()+1+len(seg) <= limit {
			current.WriteString(" ")
			current.WriteString(seg)
			continue
		}
		pieces = append(pieces, current.String())
		current.Reset()
		current.WriteString(seg)
	}
	if current.Len() > 0 {
		pieces = append(pieces, current.String())
	}
	return pieces
}

// packWords is the last resort for a boundary-free run of text.
func packWords(text string, limit int) []string {
	words := strings.Fields(text)
	var pieces []string
	var current strings.Builder
	for _, w := range words {
		if current.Len() > 0 && current.Len()+1+len(w) > limit {
			pieces = append(pieces, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(w)
	}
	if current.Len() > 0 {
		pieces = append(pieces, current.String())
	}
	return pieces
}

func allWithin(pieces []string, limit int) bool {
	for _, p := range pieces {
		if len(p) > limit {
			return false
		}
	}
	return true
}
