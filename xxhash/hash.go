// Package xxhash fingerprints generated output so stale files can be
// reported by digest.
package xxhash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sum returns the hex xxhash64 digest of content.
func Sum(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
