// Package shared provides common utility functions used across multiple
// packages in the shellpin codebase.
package shared

import (
	"fmt"
	"strings"
)

// ShortRevision abbreviates a revision for log output. Full digests are
// unwieldy in console logs; twelve hex chars is plenty to identify one.
func ShortRevision(revision string) string {
	if len(revision) <= 12 {
		return revision
	}
	return revision[:12]
}

// IsHexString reports whether value consists solely of lowercase hex
// digits.
func IsHexString(value string) bool {
	for _, r := range value {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return len(value) > 0
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// HTTPStatusErrorWithBody creates a formatted error that includes the
// response body for non-2xx HTTP responses.
func HTTPStatusErrorWithBody(status int, url string, body string) error {
	return fmt.Errorf("status=%d url=%s response=%s", status, url, strings.TrimSpace(body))
}
