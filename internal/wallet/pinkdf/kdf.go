// Package pinkdf stretches a short PIN and a wallet salt into a symmetric key
// by iterated hashing.
//
// Version history:
//
//	V1: value = salt + ":" + pin, then 100 rounds of value = hex(SHA-256(value)).
//
// A new version must be added next to the existing ones, never replace them,
// so secrets encrypted under older parameters stay decryptable.
package pinkdf

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// Version identifies a set of KDF parameters.
type Version int

const (
	V1 Version = 1

	// Current is used for every newly created wallet.
	Current = V1
)

// ErrKdf is returned for unknown versions.
var ErrKdf = errors.New("kdf error")

// rounds per version. Kept low enough for interactive unlock on mobile CPUs.
var rounds = map[Version]int{
	V1: 100,
}

// Rounds returns the iteration count of v, or 0 when v is unknown.
func Rounds(v Version) int {
	return rounds[v]
}

// DeriveKey derives the encryption key for pin and salt with the Current version.
// It panics if Current has no registered parameters.
func DeriveKey(pin string, salt string) string {
	key, err := DeriveKeyVersion(Current, pin, salt)
	if err != nil {
		panic(err)
	}

	return key
}

// DeriveKeyVersion derives the encryption key for pin and salt with the parameters of v.
func DeriveKeyVersion(v Version, pin string, salt string) (string, error) {
	n, ok := rounds[v]
	if !ok {
		return "", errors.Wrapf(ErrKdf, "unknown kdf version %d", v)
	}

	value := salt + ":" + pin
	for range n {
		sum := sha256.Sum256([]byte(value))
		value = hex.EncodeToString(sum[:])
	}

	return value, nil
}

func (v Version) String() string {
	return fmt.Sprintf("v%d", int(v))
}
