// Package cryptox implements the password digest used by the identity engine.
//
// The digest is intentionally a single unsalted hash: the stored value is
// deterministic for a given password. This is a prototype-grade scheme, not a
// hardened credential store.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// PasswordDigest returns the hex-encoded SHA3-256 digest of password.
// Equal passwords always produce equal digests.
func PasswordDigest(password []byte) string {
	sum := sha3.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// DigestEqual compares two digests in constant time.
func DigestEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
