// Package utils provides the helper utilities shared by both applications:
// password hashing, JWT token management, caller-identity context plumbing,
// and HTTP response writing.
package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// HashPassword computes the MD5 digest of the given plaintext and returns
// it hex-encoded. The hash is deterministic and unsalted: the same input
// always produces the same output, which is what the credential flow
// relies on (hash on registration, hash-and-compare on login and password
// change). The empty string is a valid input.
//
// MD5 is kept for compatibility with the stored password format; it is a
// legacy choice, not a recommendation.
func HashPassword(plaintext string) string {
	sum := md5.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
