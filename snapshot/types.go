package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot represents the converted state of one directory object.
type Snapshot struct {
	// RunID groups every snapshot produced by one conversion run
	RunID uuid.UUID

	// Category is the bucket the record was classified into (e.g., "user", "organizationalUnit")
	Category string

	// DN is the Distinguished Name of the object
	DN string

	// Attributes contains every attribute of the converted record
	// Key: attribute name, Value: attribute values in record order
	Attributes map[string][]string

	// Timestamp records when this snapshot was created
	Timestamp time.Time
}
