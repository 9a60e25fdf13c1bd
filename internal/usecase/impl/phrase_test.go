package impl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPhrase_ExactUnderNormalization(t *testing.T) {
	assert.True(t, matchPhrase("I Am Unstoppable!", "i am unstoppable", 0.8))
	assert.True(t, matchPhrase("  rise and shine  ", "Rise, and SHINE.", 0.8))
}

func TestMatchPhrase_WordSubsetOrderIndependent(t *testing.T) {
	// Every target word appears somewhere in the candidate.
	assert.True(t, matchPhrase("I am unstoppable", "I am totally unstoppable today", 0.8))
	assert.True(t, matchPhrase("morning energy focus", "focus energy morning", 0.8))
}

func TestMatchPhrase_BelowThresholdFails(t *testing.T) {
	// One of four target words is not 80%.
	assert.False(t, matchPhrase("I am truly unstoppable", "unstoppable", 0.8))
	assert.False(t, matchPhrase("I am unstoppable", "unstoppable", 0.8))
}

func TestMatchPhrase_EmptyInputs(t *testing.T) {
	assert.False(t, matchPhrase("", "anything", 0.8))
	assert.False(t, matchPhrase("wake up now please", "", 0.8))
}

func TestGeneratePhrase_WordCountAndPool(t *testing.T) {
	phrase := generatePhrase(4)

	words := strings.Fields(phrase)
	require.Len(t, words, 4)

	pool := make(map[string]struct{}, len(phrasePool))
	for _, w := range phrasePool {
		pool[w] = struct{}{}
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		_, ok := pool[w]
		assert.True(t, ok, "generated word %q must come from the pool", w)
		_, dup := seen[w]
		assert.False(t, dup, "generated words must be distinct")
		seen[w] = struct{}{}
	}
}

func TestGeneratePhrase_InvalidCountFallsBack(t *testing.T) {
	assert.Len(t, strings.Fields(generatePhrase(0)), 4)
	assert.Len(t, strings.Fields(generatePhrase(1000)), 4)
}

func TestGeneratePhrase_MatchesItself(t *testing.T) {
	for range 20 {
		phrase := generatePhrase(4)
		assert.True(t, matchPhrase(phrase, phrase, 0.8))
	}
}
