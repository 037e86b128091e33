package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the current credential scheme. Changing these
// invalidates every stored hash, so they are fixed constants rather than
// configuration.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 2
	argonKeyLen  = 32
)

// DeriveHash computes the current-scheme salted hash of code: argon2id
// keyed by the record's salt, base64-encoded without padding. The loader
// uses it to upgrade plaintext "Code" cells at load time and the verifier
// recomputes it on every login.
func DeriveHash(code, salt string) string {
	key := argon2.IDKey([]byte(code), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.RawStdEncoding.EncodeToString(key)
}

// hashEqual compares two encoded hashes in constant time.
func hashEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// fastHash is the legacy digest: lowercase hex SHA-256.
func fastHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
