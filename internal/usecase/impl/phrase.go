package impl

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// phrasePool is the word list challenge phrases are drawn from. Phrases are
// generated in memory when a challenge surface opens and are never persisted,
// so a session restored after a restart simply gets a fresh one.
var phrasePool = []string{
	"morning", "sunrise", "awake", "focused", "strong", "steady",
	"unstoppable", "ready", "bright", "early", "rise", "shine",
	"today", "forward", "energy", "clear", "sharp", "calm",
	"victory", "momentum", "discipline", "courage", "purpose", "drive",
}

// generatePhrase draws wordCount distinct words from the pool and joins them
// with single spaces.
func generatePhrase(wordCount int) string {
	if wordCount <= 0 || wordCount > len(phrasePool) {
		wordCount = 4
	}

	picked := rand.Perm(len(phrasePool))[:wordCount]
	words := make([]string, 0, wordCount)
	for _, idx := range picked {
		words = append(words, phrasePool[idx])
	}

	return strings.Join(words, " ")
}

// normalizeWords case-folds the input, strips punctuation and splits it into
// whitespace-delimited words.
func normalizeWords(s string) []string {
	var cleaned strings.Builder
	cleaned.Grow(len(s))

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			cleaned.WriteRune(r)
		}
	}

	return strings.Fields(cleaned.String())
}

// matchPhrase reports whether candidate passes verification against target.
// Both sides are normalized; an exact match passes, and otherwise the
// candidate passes when at least threshold of the target's words appear
// anywhere in the candidate's word set. Word order is ignored and duplicates
// are not specially handled, which tolerates speech-to-text noise without
// requiring an exact transcription.
func matchPhrase(target, candidate string, threshold float64) bool {
	targetWords := normalizeWords(target)
	candidateWords := normalizeWords(candidate)

	if len(targetWords) == 0 {
		return false
	}

	if strings.Join(targetWords, " ") == strings.Join(candidateWords, " ") {
		return true
	}

	candidateSet := make(map[string]struct{}, len(candidateWords))
	for _, w := range candidateWords {
		candidateSet[w] = struct{}{}
	}

	present := 0
	for _, w := range targetWords {
		if _, ok := candidateSet[w]; ok {
			present++
		}
	}

	return float64(present)/float64(len(targetWords)) >= threshold
}
