package database

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"f0oster/adconvert/snapshot"

	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

type Database struct {
	dsn            string
	ConnectionPool *pgxpool.Pool
	logger         hclog.Logger
}

func NewDatabase(dsn string, logger hclog.Logger) *Database {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Database{
		dsn:    dsn,
		logger: logger.Named("database"),
	}
}

// add a connection to the pgx connection pool
func (db *Database) Connect(ctx context.Context) error {
	pool, err := pgxpool.New(ctx, db.dsn)
	if err != nil {
		return fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("unable to reach database: %w", err)
	}
	db.ConnectionPool = pool
	return nil
}

func (db *Database) Close() {
	if db.ConnectionPool != nil {
		db.ConnectionPool.Close()
	}
}

// EnsureSchema creates the archive tables when they do not exist yet.
func (db *Database) EnsureSchema(ctx context.Context) error {
	if _, err := db.ConnectionPool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func rollbackOrCommit(ctx context.Context, logger hclog.Logger, tx pgx.Tx, err *error) {
	if *err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error("transaction rollback failed", "error", rbErr, "original_error", *err)
		} else {
			logger.Warn("transaction rolled back", "error", *err)
		}
		return
	}
	if cmErr := tx.Commit(ctx); cmErr != nil {
		*err = fmt.Errorf("commit failed: %w", cmErr)
		logger.Error("transaction commit failed", "error", cmErr)
	}
}

// WriteSnapshots stores snapshots in a single transaction.
func (db *Database) WriteSnapshots(ctx context.Context, snapshots []*snapshot.Snapshot) (err error) {
	if len(snapshots) == 0 {
		return nil
	}

	tx, err := db.ConnectionPool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer rollbackOrCommit(ctx, db.logger, tx, &err)

	seenRuns := make(map[string]bool)
	for _, snap := range snapshots {
		runKey := snap.RunID.String()
		if !seenRuns[runKey] {
			if _, err = tx.Exec(ctx, InsertRun, snap.RunID); err != nil {
				return fmt.Errorf("failed to insert run %s: %w", runKey, err)
			}
			seenRuns[runKey] = true
		}

		attributesJSON, marshalErr := json.Marshal(snap.Attributes)
		if marshalErr != nil {
			err = fmt.Errorf("failed to marshal snapshot for DN %s: %w", snap.DN, marshalErr)
			return err
		}

		if _, err = tx.Exec(ctx, UpsertConvertedObject,
			snap.RunID,
			snap.Category,
			snap.DN,
			attributesJSON,
			snap.Timestamp,
		); err != nil {
			return fmt.Errorf("failed to insert converted object %s: %w", snap.DN, err)
		}
	}

	db.logger.Debug("snapshots written", "count", len(snapshots))
	return nil
}
