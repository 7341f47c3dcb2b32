package postgres

// SQL queries for traffic record storage.

const (
	recordColumns = `id, date, visits, created_at, updated_at`

	// queryListRecords returns every record, newest date first.
	queryListRecords = `
		SELECT ` + recordColumns + `
		FROM traffic_records
		ORDER BY date DESC, id ASC
	`

	queryGetRecord = `
		SELECT ` + recordColumns + `
		FROM traffic_records
		WHERE id = $1
	`

	// queryFindByDate backs the conflict check that runs before every date write.
	queryFindByDate = `
		SELECT ` + recordColumns + `
		FROM traffic_records
		WHERE date = $1
		LIMIT 1
	`

	// queryInsertRecord relies on the unique index on date to reject a
	// duplicate that slipped past the pre-insert check.
	queryInsertRecord = `
		INSERT INTO traffic_records (id, date, visits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	// queryUpdateRecord returns the full row so callers see created_at unchanged.
	// No row back means the id does not exist.
	queryUpdateRecord = `
		UPDATE traffic_records
		SET date = $2, visits = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + recordColumns + `
	`

	queryDeleteRecord = `
		DELETE FROM traffic_records
		WHERE id = $1
	`

	queryDeleteAllRecords = `DELETE FROM traffic_records`
)
