package snapshot

import (
	"fmt"
	"time"

	"f0oster/adconvert/activedirectory"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
)

// Service builds snapshots of converted records for storage.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// CreateSnapshot converts a Record into a Snapshot. The record must carry a
// parseable dn.
func (s *Service) CreateSnapshot(runID uuid.UUID, category activedirectory.Category, record *activedirectory.Record) (*Snapshot, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot create snapshot from nil record")
	}

	dn := record.DN()
	if dn == "" {
		return nil, fmt.Errorf("record is missing required dn attribute")
	}
	if _, err := ldap.ParseDN(dn); err != nil {
		return nil, fmt.Errorf("failed to parse dn '%s': %w", dn, err)
	}

	attributes := make(map[string][]string, record.Len())
	for _, name := range record.Names() {
		attributes[name] = record.Values(name)
	}

	return &Snapshot{
		RunID:      runID,
		Category:   string(category),
		DN:         dn,
		Attributes: attributes,
		Timestamp:  s.now().UTC(),
	}, nil
}
