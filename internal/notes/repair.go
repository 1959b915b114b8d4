package notes

import (
	"strings"
	"unicode"
)

// Truncation repair is deliberately conservative: it trims a tail that looks
// cut off mid-word, prefers closing on a full sentence when one exists, and
// hands back the original entry whenever trimming would destroy too much.

// shortWordsOK are legitimate short final words the vowel/length heuristics
// would otherwise flag as truncations.
var shortWordsOK = map[string]bool{
	"a": true, "i": true, "an": true, "as": true, "at": true, "be": true,
	"by": true, "do": true, "go": true, "he": true, "if": true, "in": true,
	"is": true, "it": true, "my": true, "no": true, "of": true, "on": true,
	"or": true, "so": true, "to": true, "up": true, "us": true, "we": true,
}

// recognizedSuffixes mark a final word as complete even when short.
var recognizedSuffixes = []string{
	"ing", "ion", "ed", "er", "es", "ly", "al", "ty", "nt", "st", "th",
	"ship", "ment", "ness", "ics", "ism",
}

// Repair trims words off the tail of an entry until it no longer looks
// truncated, preferring a full sentence boundary when one exists past the
// halfway point. If the repaired entry would be shorter than half the
// original, the original is returned unchanged.
func Repair(entry string) string {
	trimmed := strings.TrimSpace(entry)
	if trimmed == "" {
		return entry
	}

	// Already closed by terminal punctuation: nothing to repair.
	if hasTerminalPunctuation(trimmed) {
		return trimmed
	}

	// A sentence boundary in the back half is the cleanest recovery point.
	if cut := lastSentenceEnd(trimmed); cut >= len(trimmed)/2 {
		return strings.TrimSpace(trimmed[:cut+1])
	}

	words := strings.Fields(trimmed)
	dropped := 0
	for len(words) > 1 && dropped < 3 && looksTruncated(words[len(words)-1]) {
		words = words[:len(words)-1]
		dropped++
	}

	repaired := strings.Join(words, " ")
	repaired = strings.TrimRight(repaired, ",;:- ")
	if len(repaired) < len(trimmed)/2 {
		return trimmed
	}

	// A complete thought without terminal punctuation reads better closed.
	if len(words) >= 5 && endsInWordCharacter(repaired) && !looksTruncated(words[len(words)-1]) {
		repaired += "."
	}

	return repaired
}

func repairAll(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, Repair(e))
	}
	return out
}

// looksTruncated reports whether a final word appears cut off: short with no
// recognized suffix, or a tail with no vowels.
func looksTruncated(word string) bool {
	word = strings.ToLower(strings.Trim(word, `"'()[]`))
	if word == "" {
		return true
	}
	if shortWordsOK[word] {
		return false
	}
	if isNumeric(word) {
		return false
	}
	if len(word) <= 2 {
		return true
	}
	if len(word) <= 3 && !hasRecognizedSuffix(word) && !containsVowel(word) {
		return true
	}
	// A vowel-free tail suggests a mid-word cut ("prog", "mgm"). The suffix
	// check keeps legitimate endings like "-nt" and "-st" alive.
	tail := word
	if len(tail) > 3 {
		tail = tail[len(tail)-3:]
	}
	return !containsVowel(tail) && !hasRecognizedSuffix(word)
}

func hasRecognizedSuffix(word string) bool {
	for _, s := range recognizedSuffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

func containsVowel(s string) bool {
	return strings.ContainsAny(s, "aeiouy")
}

func isNumeric(s string) bool {
	s = strings.Trim(s, "%$#+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != ',' && r != '/' {
			return false
		}
	}
	return true
}

func endsInWordCharacter(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[len(s)-1])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func hasTerminalPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// lastSentenceEnd returns the index of the last sentence-terminating rune
// followed by a space (or -1).
func lastSentenceEnd(s string) int {
	for i := len(s) - 2; i > 0; i-- {
		if (s[i] == '.' || s[i] == '!' || s[i] == '?') && s[i+1] == ' ' {
			return i
		}
	}
	return -1
}
