package sqlite

import (
	"fmt"
)

const schema = `
	CREATE TABLE IF NOT EXISTS export_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_name TEXT NOT NULL,
		bank_code TEXT NOT NULL,
		batch_number TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		total_amount_halalas INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS batch_sequences (
		bank_code TEXT NOT NULL,
		batch_date TEXT NOT NULL,
		next_number INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (bank_code, batch_date)
	);
`

// Migrate creates the export log tables if they do not exist yet.
func (c *Client) Migrate() error {
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
