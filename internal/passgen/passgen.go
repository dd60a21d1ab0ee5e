// Package passgen generates random passwords from selectable character classes.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
)

// MaxLength bounds the length of generated passwords.
const MaxLength = 1024

// Character classes offered by the generator.
const (
	Special   = "!@#%_$~"
	Digits    = "0123456789"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
)

type Options struct {
	Length    int
	Special   bool
	Digits    bool
	Uppercase bool
	Lowercase bool
}

// classes returns the selected character sets in a fixed order.
func (o Options) classes() []string {
	var sets []string
	if o.Special {
		sets = append(sets, Special)
	}
	if o.Digits {
		sets = append(sets, Digits)
	}
	if o.Uppercase {
		sets = append(sets, Uppercase)
	}
	if o.Lowercase {
		sets = append(sets, Lowercase)
	}
	return sets
}

// Validate checks that at least one class is selected and that the length
// leaves room for one character of every selected class.
func (o Options) Validate() error {
	sets := o.classes()
	if len(sets) == 0 {
		return kerrors.ErrNoCharacterClass
	}
	if o.Length < len(sets) || o.Length > MaxLength {
		return fmt.Errorf("%w: must be between %d and %d, got %d", kerrors.ErrInvalidLength, len(sets), MaxLength, o.Length)
	}
	return nil
}

// Generate returns a password containing at least one character from each
// selected class, filled up from their union and shuffled.
func Generate(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	sets := opts.classes()
	var allowed []byte
	password := make([]byte, 0, opts.Length)

	for _, set := range sets {
		allowed = append(allowed, set...)
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < opts.Length {
		c, err := pick(string(allowed))
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func pick(set string) (byte, error) {
	i, err := randomIndex(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func randomIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random data: %w", err)
	}
	return int(v.Int64()), nil
}
