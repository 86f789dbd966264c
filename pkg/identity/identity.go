// Package identity supplies the unique suffix of generated module ids.
//
// Fritzing builds random part ids by hashing a braced UUID string with MD4
// and taking the hex digest; the factory does the same so generated parts
// look like parts made in the Fritzing parts editor.
package identity

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/md4"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Provider returns a new unique identifier on every call.
type Provider interface {
	NewID() (string, error)
}

// Random is the default provider: MD4 of a fresh random UUID.
type Random struct{}

// NewID implements Provider.
func (Random) NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to create uuid: %w", err)
	}
	return Hash(u), nil
}

// Hash returns the Fritzing-style identifier for u.
func Hash(u uuid.UUID) string {
	return HashString("{" + u.String() + "}")
}

// HashString returns the hex MD4 digest of s folded to Latin-1.
func HashString(s string) string {
	h := md4.New()
	h.Write([]byte(Latin1(s)))
	return hex.EncodeToString(h.Sum(nil))
}

// Fixed always returns the same identifier. Tests and reproducible builds
// use it.
type Fixed string

// NewID implements Provider.
func (f Fixed) NewID() (string, error) {
	if f == "" {
		return "", fmt.Errorf("empty fixed identifier")
	}
	return string(f), nil
}

// FromUUID parses a UUID string and returns a provider that always hashes it.
func FromUUID(s string) (Provider, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	return Fixed(Hash(u)), nil
}

// Latin1 folds s into characters representable in ISO 8859-1. Characters
// outside the set are replaced by their compatibility decomposition with
// any non-Latin-1 parts dropped, so "ﬁ" becomes "fi" and "Ω" disappears.
func Latin1(s string) string {
	enc := charmap.ISO8859_1
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := enc.EncodeRune(r); ok {
			b.WriteRune(r)
			continue
		}
		for _, d := range norm.NFKD.String(string(r)) {
			if _, ok := enc.EncodeRune(d); ok {
				b.WriteRune(d)
			}
		}
	}
	return b.String()
}
