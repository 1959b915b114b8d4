package notes

import "strings"

// Empirically tuned similarity thresholds. These are carried over from the
// observed behavior of the extraction heuristics, not derived from first
// principles; treat them as tunable.
const (
	similarLengthRatio  = 0.65
	similarMaxLengthGap = 50
	similarMinShortLen  = 30
	similarPrefixLen    = 25
	containedMinWords   = 3
	containedMinLen     = 12
)

// similarKeys reports whether two normalized keys describe the same fact.
// Substring containment plus a length heuristic covers the prefix/truncation
// cases; full word containment covers a one-liner restated inside a longer,
// more detailed entry ("Captain, Robotics Team" inside "Team Captain,
// Riverview Robotics Team 5812 ...").
func similarKeys(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}

	if strings.Contains(long, short) {
		ratio := float64(len(short)) / float64(len(long))
		if ratio >= similarLengthRatio {
			return true
		}
		if len(long)-len(short) < similarMaxLengthGap && len(short) > similarMinShortLen {
			return true
		}
		if strings.HasPrefix(long, short) && len(short) > similarPrefixLen {
			return true
		}
	}

	shortWords := strings.Fields(short)
	if len(shortWords) >= containedMinWords && len(short) >= containedMinLen {
		return wordsContained(shortWords, long)
	}
	return false
}

// wordsContained reports whether every word of the shorter key appears in
// the longer key's word set, ignoring punctuation remnants.
func wordsContained(shortWords []string, long string) bool {
	longSet := make(map[string]bool)
	for _, w := range strings.Fields(long) {
		longSet[strings.Trim(w, ".,;:!?()&-")] = true
	}
	for _, w := range shortWords {
		w = strings.Trim(w, ".,;:!?()&-")
		if w == "" || w == "-" {
			continue
		}
		if !longSet[w] {
			return false
		}
	}
	return true
}

// IsDuplicateOf reports whether a candidate note duplicates any existing
// entry, exactly or by the similarity rule. Used when merging fallback notes.
func IsDuplicateOf(candidate string, existing []string) bool {
	key := normalizeKey(candidate)
	if key == "" {
		return true
	}
	for _, e := range existing {
		other := normalizeKey(e)
		if key == other || similarKeys(key, other) {
			return true
		}
	}
	return false
}

// dedupeSimilar removes semantic near-duplicates, keeping the longer, more
// complete entry. On equal length the earlier-seen entry wins.
func dedupeSimilar(entries []string) []string {
	type kept struct {
		entry string
		key   string
	}
	var survivors []kept

	for _, e := range entries {
		key := normalizeKey(e)
		replaced := false
		duplicate := false
		for i, s := range survivors {
			if !similarKeys(key, s.key) {
				continue
			}
			if len(key) > len(s.key) {
				survivors[i] = kept{entry: e, key: key}
				replaced = true
			}
			duplicate = true
			break
		}
		if duplicate && !replaced {
			continue
		}
		if !duplicate {
			survivors = append(survivors, kept{entry: e, key: key})
		}
	}

	out := make([]string, len(survivors))
	for i, s := range survivors {
		out[i] = s.entry
	}
	return out
}
