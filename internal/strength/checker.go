package strength

import (
	"strings"

	"github.com/passmint/passmint-go/internal/crypto"
)

// Level selects how strict the acceptability rules are.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelStrong Level = "strong"
	LevelMax    Level = "max"
)

// commonWords is a small denylist of frequent words and credentials. A
// candidate containing any of them as a case-insensitive substring is
// rejected at every level.
var commonWords = []string{
	"password", "admin", "welcome", "123456", "qwerty", "user", "guest",
	"login", "test", "root", "secret", "dragon", "shadow", "ninja",
	"football", "monkey", "master", "sunshine", "princess", "love",
}

// keyboardPatterns are adjacent-key sequences rejected at every level.
var keyboardPatterns = []string{"qwerty", "asdfgh", "zxcvbn", "12345", "qazwsx"}

// Check reports whether candidate is acceptable at the given level.
//
// Universal rules run first and short-circuit: denylisted words, runs of
// three or more identical characters, and keyboard patterns reject the
// candidate regardless of level. Only then are the level rules applied to
// the candidate's character-class diversity. Unknown levels never accept.
func Check(candidate string, level Level) bool {
	lower := strings.ToLower(candidate)

	if containsAny(lower, commonWords) {
		return false
	}
	if hasRepeatedRun(candidate) {
		return false
	}
	if containsAny(lower, keyboardPatterns) {
		return false
	}

	switch level {
	case LevelEasy:
		return true
	case LevelStrong:
		return Diversity(candidate) >= 3
	case LevelMax:
		return Diversity(candidate) == 4
	default:
		return false
	}
}

// Diversity counts how many of the four character classes (upper, lower,
// digit, symbol) appear in candidate. Symbols are members of the fixed
// punctuation set used for generation.
func Diversity(candidate string) int {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.IndexByte(crypto.SymbolChars, c) >= 0:
			hasSymbol = true
		}
	}

	count := 0
	for _, has := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if has {
			count++
		}
	}
	return count
}

func containsAny(s string, entries []string) bool {
	for _, entry := range entries {
		if strings.Contains(s, entry) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any character occurs three or more times
// in a row.
func hasRepeatedRun(s string) bool {
	for i := 2; i < len(s); i++ {
		if s[i] == s[i-1] && s[i] == s[i-2] {
			return true
		}
	}
	return false
}
