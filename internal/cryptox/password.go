// Package cryptox wraps the password hashing primitives used by gatekeeper.
package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is fixed rather than configurable so that every stored hash
// carries the same work factor. Raising it requires a code change.
const hashCost = 12

// digest reduces a password of any length to a fixed 44-byte input for
// bcrypt, whose library rejects inputs over 72 bytes. The SHA-256 sum is
// base64-encoded so no byte of the bcrypt input is NUL.
func digest(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// HashPassword returns a salted bcrypt hash of the plaintext password.
// The output differs between calls for the same input because bcrypt
// embeds a random salt in the hash. Passwords of any length are accepted;
// every byte of the input contributes to the digest bcrypt operates on.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(plain), hashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the given hash produced by
// HashPassword. A malformed or empty hash yields false, never an error or
// a panic.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(plain)) == nil
}
