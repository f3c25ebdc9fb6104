package engine

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultReferencePrefix is the platform's booking reference prefix.
const DefaultReferencePrefix = "KNJ"

const referenceTokenLength = 13

// NewReference builds a booking reference: the prefix plus a 13-character
// uppercase token drawn from a fresh UUID. References are human-shareable and
// distinct from the internal id; uniqueness is enforced by the bookings
// table, with callers retrying on collision.
func NewReference(prefix string) string {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + token[:referenceTokenLength]
}
