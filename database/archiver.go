package database

import (
	"context"

	"f0oster/adconvert/activedirectory"
	"f0oster/adconvert/snapshot"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// SnapshotWriter persists snapshots. *Database is the production implementation.
type SnapshotWriter interface {
	WriteSnapshots(ctx context.Context, snapshots []*snapshot.Snapshot) error
}

// Archiver stores converted records as snapshots grouped under one run id.
type Archiver struct {
	writer    SnapshotWriter
	snapshots *snapshot.Service
	runID     uuid.UUID
	logger    hclog.Logger
}

func NewArchiver(writer SnapshotWriter, logger hclog.Logger) *Archiver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Archiver{
		writer:    writer,
		snapshots: snapshot.NewService(),
		runID:     uuid.New(),
		logger:    logger.Named("archive"),
	}
}

func (a *Archiver) RunID() uuid.UUID {
	return a.runID
}

// Archive snapshots every record and writes them in one batch. Records that
// cannot be snapshotted are logged and left out.
func (a *Archiver) Archive(ctx context.Context, category activedirectory.Category, records []*activedirectory.Record) error {
	snaps := make([]*snapshot.Snapshot, 0, len(records))
	for _, record := range records {
		snap, err := a.snapshots.CreateSnapshot(a.runID, category, record)
		if err != nil {
			a.logger.Warn("skipping record", "category", category, "dn", record.DN(), "error", err)
			continue
		}
		snaps = append(snaps, snap)
	}

	return a.writer.WriteSnapshots(ctx, snaps)
}
