package review

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the cache key for a code submission: a hex-encoded
// SHA-256 digest over the code followed by the language tag. The digest is
// whitespace-sensitive; callers must not normalize inputs before hashing.
func Fingerprint(code, language string) string {
	h := sha256.New()
	h.Write([]byte(code))
	h.Write([]byte(language))
	return hex.EncodeToString(h.Sum(nil))
}
