package database

const (
	InsertRun = `
		INSERT INTO ConversionRuns (run_id)
		VALUES ($1)
		ON CONFLICT (run_id) DO NOTHING`

	// A dn seen twice in one run keeps the last snapshot.
	UpsertConvertedObject = `
		INSERT INTO ConvertedObjects (run_id, category, distinguishedName, attributes_snapshot, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (run_id, distinguishedName)
		DO UPDATE SET
			category = EXCLUDED.category,
			attributes_snapshot = EXCLUDED.attributes_snapshot,
			timestamp = EXCLUDED.timestamp`
)
