// Package cryptox holds the PIN-hashing primitives: salt generation,
// key derivation and constant-time verification. The rest of the system
// treats it as an opaque password-hashing service.
package cryptox

import (
	"crypto/subtle"

	"github.com/danunant/bbank/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes generated per user at registration.
const SaltSize = 16

// GenerateSalt returns a fresh random salt.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPIN derives the stored verification hash from a plaintext PIN and a
// salt using argon2id. The same parameters must be used at registration
// and at login.
func HashPIN(pin []byte, salt []byte) []byte {
	return argon2.IDKey(pin, salt, 1, 64*1024, 4, 32)
}

// VerifyPIN re-derives a candidate hash from the PIN attempt and compares
// it against the stored hash over the full length, so the comparison does
// not leak a matching prefix through timing.
func VerifyPIN(pinAttempt []byte, storedHash []byte, salt []byte) bool {
	candidate := HashPIN(pinAttempt, salt)
	return subtle.ConstantTimeCompare(candidate, storedHash) == 1
}
