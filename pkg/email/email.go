// Package email provides a validated, normalized email address value object.
package email

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lumopay/moneta/pkg/domain"
)

// ErrInvalidFormat is returned when the input does not look like
// local-part@domain.tld.
var ErrInvalidFormat = errors.New("invalid email address format")

// Local part: word characters plus + - . ; domain: letters, digits, hyphens
// and dots with a trailing alphabetic segment. Matching is case-insensitive;
// the stored value is lowercased. No trimming: surrounding whitespace is a
// format error, not noise.
var addressPattern = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-.]+\.[a-z]+$`)

// EmailAddress is an immutable, lowercase-normalized email address.
// It is a comparable one-field struct and can be used as a map key as-is.
type EmailAddress struct {
	value string
}

// New validates raw and returns its normalized (lowercase) form.
func New(raw string) (EmailAddress, error) {
	if !addressPattern.MatchString(raw) {
		return EmailAddress{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	return EmailAddress{value: strings.ToLower(raw)}, nil
}

// String returns the normalized address.
func (e EmailAddress) String() string { return e.value }

// Equals reports whether other is an EmailAddress with the same normalized
// value. A comparand of any other type is unequal, never an error.
func (e EmailAddress) Equals(other domain.ValueObject) bool {
	o, ok := other.(EmailAddress)
	if !ok {
		return false
	}
	return e.value == o.value
}

// MarshalText encodes the normalized address.
func (e EmailAddress) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// UnmarshalText decodes through New, so a decoded address satisfies the
// same invariants as a constructed one.
func (e *EmailAddress) UnmarshalText(text []byte) error {
	decoded, err := New(string(text))
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}
