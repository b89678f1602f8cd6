package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey derives the stable per-user prefix used in artifact storage
// keys, so raw user IDs never appear in key paths.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
