package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the full hex SHA-256 digest of data. Snapshot, graph, and
// document hashes across the pipeline all use this form, so cache keys and
// archive records stay comparable.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey derives a stage-prefixed cache key from the given parts. The
// prefix keeps graph, document, and artifact entries distinct even when
// their option hashes coincide.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
