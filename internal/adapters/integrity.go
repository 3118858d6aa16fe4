package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"shellpin/internal/types"
)

// verifySnapshotIntegrity enforces content addressing: the sha256 of the
// retrieved bytes must match the pinned revision. Abbreviated pins match
// by prefix; a full-length pin is therefore byte-exact. Returns the full
// digest on success.
func verifySnapshotIntegrity(locator types.SnapshotLocator, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	digest := hex.EncodeToString(sum[:])
	if !strings.HasPrefix(digest, strings.ToLower(locator.Revision)) {
		return "", types.IntegrityError{Locator: locator, Got: digest}
	}
	return digest, nil
}
