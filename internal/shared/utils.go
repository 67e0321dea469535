// Package shared provides sentinel errors and small utility functions
// used across gatekeeper components.
package shared

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// MakeRandHexString generates a random hexadecimal string of the given size.
// The size parameter specifies the number of random bytes to generate before
// encoding them as a hexadecimal string, so the final string length is twice
// the size. It returns an error if the random number generator fails.
func MakeRandHexString(size int) (string, error) {

	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// MakeRandDigitCode generates a uniformly random numeric code of exactly
// n digits with no leading zero, e.g. n=6 yields a value in [100000, 999999].
func MakeRandDigitCode(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("invalid code length: %d", n)
	}

	low := big.NewInt(1)
	for i := 1; i < n; i++ {
		low.Mul(low, big.NewInt(10))
	}
	// span = 9 * 10^(n-1), codes are low..low+span-1
	span := new(big.Int).Mul(low, big.NewInt(9))

	v, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}

	return v.Add(v, low).String(), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Useful for removing plaintext passwords from memory after use.
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
