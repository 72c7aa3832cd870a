package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// APIKeyPrefix tags every issued key so pasted secrets are recognizable.
const APIKeyPrefix = "ff_live_"

// GenerateAPIKey mints a new key. The plain key is shown to the caller
// exactly once; only the hash and the display prefix are persisted.
func GenerateAPIKey() (key, hash, prefix string) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		// crypto/rand failing means the host is broken; nothing sane to return
		panic(err)
	}
	key = APIKeyPrefix + hex.EncodeToString(raw)
	hash = HashAPIKey(key)
	prefix = key[:15] // "ff_live_" + first 7 hex chars
	return key, hash, prefix
}

// HashAPIKey returns the hex SHA-256 of the full key string.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// StripBearer removes an optional "Bearer " scheme from an Authorization
// header value.
func StripBearer(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return strings.TrimSpace(header)
}
