// Package cache provides the process-lifetime cache used for generated name
// variant sets and fetched articles. It is the only state shared between
// independent screening requests and must be safe for concurrent use.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the key-value contract
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a namespaced cache key from its parts, e.g. the normalized target
// name plus a configuration fingerprint.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "namescreen:v1:" + hex.EncodeToString(hash[:])
}
