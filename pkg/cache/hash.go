package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced cache key "prefix:hash(parts...)". The parts
// are JSON-marshaled before hashing, so any option struct works as input.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256, 64 hex chars; truncating would invite collisions
	// between graphs that differ only deep in their edge lists.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash returns the SHA-256 of data as a 64-character hex string. It is the
// content hash behind every derived cache key: two equal graph documents
// always share keys, and any mutation changes them.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
