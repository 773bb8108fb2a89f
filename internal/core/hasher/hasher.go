// Package hasher computes and verifies content digests in the
// "sha256:<hex>" form recorded for catalogs.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const prefix = "sha256:"

// ErrDigestMismatch is returned when content does not match the expected digest.
var ErrDigestMismatch = errors.New("digest mismatch")

// CalculateSHA256 computes the SHA256 hash of the given content
// and returns it in the format "sha256:<hex_hash>".
func CalculateSHA256(content []byte) string {
	sum := sha256.Sum256(content)
	return prefix + hex.EncodeToString(sum[:])
}

// Verify checks content against expected. The "sha256:" prefix of expected is
// optional and the hex digits are compared case-insensitively.
func Verify(content []byte, expected string) error {
	want := strings.ToLower(strings.TrimSpace(expected))
	if !strings.HasPrefix(want, prefix) {
		want = prefix + want
	}
	actual := CalculateSHA256(content)
	if actual != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrDigestMismatch, want, actual)
	}
	return nil
}
