package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Character classes, concatenated in this order when building an alphabet.
// SymbolChars is the full ASCII punctuation set; the strength checker's
// symbol predicate is defined over the same constant.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var ErrEmptyAlphabet = errors.New("at least one character type must be selected")

// Policy selects which character classes a password may draw from.
type Policy struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// DefaultPolicy enables all four character classes.
func DefaultPolicy() Policy {
	return Policy{Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
}

// Alphabet returns the usable character pool for the policy. Class order is
// fixed (upper, lower, digit, symbol) so the pool is deterministic for a
// given policy. Returns ErrEmptyAlphabet when no class is selected.
func (p Policy) Alphabet() (string, error) {
	var pool string
	if p.Uppercase {
		pool += UppercaseChars
	}
	if p.Lowercase {
		pool += LowercaseChars
	}
	if p.Digits {
		pool += DigitChars
	}
	if p.Symbols {
		pool += SymbolChars
	}

	if pool == "" {
		return "", ErrEmptyAlphabet
	}
	return pool, nil
}

// Draw returns length characters drawn independently and uniformly from
// alphabet using crypto/rand.
func Draw(alphabet string, length int) (string, error) {
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}

	result := make([]byte, length)
	for i := range result {
		ch, err := randChar(alphabet)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
