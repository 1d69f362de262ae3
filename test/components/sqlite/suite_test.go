package integration

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"paybatch/internal/sqlite"
)

type TestSuite struct {
	DB       *sql.DB
	DBPath   string
	Client   *sqlite.Client
	teardown func()
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_paybatch.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(config)
	require.NoError(t, err, "failed to create test client")

	require.NoError(t, client.Migrate(), "failed to apply schema")

	suite := &TestSuite{
		DB:     client.DB(),
		DBPath: dbPath,
		Client: client,
		teardown: func() {
			client.Close()
			os.Remove(dbPath)
		},
	}

	return suite
}

func (s *TestSuite) Teardown() {
	s.teardown()
}

func (s *TestSuite) CountExports(t *testing.T, bankCode string) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM export_log WHERE bank_code = ?", bankCode).Scan(&count)
	require.NoError(t, err, "failed to count export log entries")

	return count
}

func (s *TestSuite) GetSequence(t *testing.T, bankCode, day string) int {
	t.Helper()

	var next int
	err := s.DB.QueryRow(
		"SELECT next_number FROM batch_sequences WHERE bank_code = ? AND batch_date = ?",
		bankCode, day,
	).Scan(&next)
	require.NoError(t, err, "failed to read batch sequence")

	return next
}
