package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Character sets used by GeneratePassword.
const (
	LowercaseChars      = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars          = "0123456789"
	CommonSymbolChars   = "!@#$%^&*()+-=,."
	UncommonSymbolChars = "_`~[]{}|;:<>?"
)

// DefaultPasswordLength is used when PasswordOptions.Length is zero.
const DefaultPasswordLength = 16

var (
	ErrNoCharacterSets      = errors.New("no character set selected")
	ErrPasswordLengthTooLow = errors.New("password length is shorter than the number of selected character sets")
)

// PasswordOptions selects the character sets of a generated password.
type PasswordOptions struct {
	Length         int
	Lowercase      bool
	Uppercase      bool
	Digits         bool
	CommonSymbols  bool
	UncommonSymbol bool
}

// DefaultPasswordOptions enables every set except the less common symbols.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:        DefaultPasswordLength,
		Lowercase:     true,
		Uppercase:     true,
		Digits:        true,
		CommonSymbols: true,
	}
}

func (o PasswordOptions) sets() []string {
	var sets []string
	if o.Lowercase {
		sets = append(sets, LowercaseChars)
	}
	if o.Uppercase {
		sets = append(sets, UppercaseChars)
	}
	if o.Digits {
		sets = append(sets, DigitChars)
	}
	if o.CommonSymbols {
		sets = append(sets, CommonSymbolChars)
	}
	if o.UncommonSymbol {
		sets = append(sets, UncommonSymbolChars)
	}
	return sets
}

// GeneratePassword returns a random password drawn from crypto/rand. It
// contains at least one character of every selected set; the rest is drawn
// from their union and the result is shuffled.
func GeneratePassword(opts PasswordOptions) (string, error) {
	if opts.Length == 0 {
		opts.Length = DefaultPasswordLength
	}

	sets := opts.sets()
	if len(sets) == 0 {
		return "", ErrNoCharacterSets
	}
	if opts.Length < len(sets) {
		return "", fmt.Errorf("%w: %d < %d", ErrPasswordLengthTooLow, opts.Length, len(sets))
	}

	var all string
	out := make([]byte, 0, opts.Length)
	for _, set := range sets {
		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
		all += set
	}
	for len(out) < opts.Length {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates
	for i := len(out) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func randomChar(set string) (byte, error) {
	i, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}
