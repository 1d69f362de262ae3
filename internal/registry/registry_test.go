package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	t.Parallel()

	reg, err := Load("")
	require.NoError(t, err)

	banks := reg.All()
	require.NotEmpty(t, banks)

	seenCodes := make(map[string]bool)
	seenPrefixes := make(map[string]bool)
	for _, bank := range banks {
		require.False(t, seenCodes[bank.Code], "duplicate code %s", bank.Code)
		require.False(t, seenPrefixes[bank.IdentifierPrefix], "duplicate prefix %s", bank.IdentifierPrefix)
		seenCodes[bank.Code] = true
		seenPrefixes[bank.IdentifierPrefix] = true

		require.Len(t, bank.IdentifierPrefix, 2)
		require.NotEmpty(t, bank.ExportSchema)
		for i, col := range bank.ExportSchema {
			require.Equal(t, i+1, col.Position, "bank %s schema positions must be contiguous", bank.Code)
		}
	}

	rajhi, ok := reg.ByCode("RJHI")
	require.True(t, ok)
	require.Equal(t, "Al Rajhi Bank", rajhi.DisplayName)
	require.Equal(t, "80", rajhi.IdentifierPrefix)
	require.True(t, rajhi.SupportsBulk)
	require.Equal(t, 5000, rajhi.MaxBulkRecords)
	require.Equal(t, "14:00", rajhi.Cutoff.String())
	require.True(t, rajhi.IsWorkingDay(time.Sunday))
	require.False(t, rajhi.IsWorkingDay(time.Friday))

	byPrefix, ok := reg.ByIdentifierPrefix("80")
	require.True(t, ok)
	require.Equal(t, rajhi.Code, byPrefix.Code)
}

func TestRegistry_LookupMissIsNotAnError(t *testing.T) {
	t.Parallel()

	reg, err := Load("")
	require.NoError(t, err)

	_, ok := reg.ByCode("UNKNOWN")
	require.False(t, ok)

	_, ok = reg.ByIdentifierPrefix("99")
	require.False(t, ok)
}

func TestRegistry_BulkCapable(t *testing.T) {
	t.Parallel()

	reg, err := Load("")
	require.NoError(t, err)

	bulk := reg.BulkCapable()
	require.NotEmpty(t, bulk)
	require.Less(t, len(bulk), len(reg.All()), "catalog has at least one non-bulk bank")
	for _, bank := range bulk {
		require.True(t, bank.SupportsBulk)
	}
}

func TestParse_RejectsBadCatalogs(t *testing.T) {
	t.Parallel()

	const validColumn = `
      - { position: 1, field_name: payee_name, header: Name, data_type: TEXT, required: true }`

	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "empty_catalog",
			yaml: `banks: []`,
		},
		{
			name: "duplicate_code",
			yaml: `
banks:
  - code: A
    display_name: Bank A
    identifier_prefix: "10"
    cutoff_time: "14:00"
    working_days: [Sunday]
    export_schema:` + validColumn + `
  - code: A
    display_name: Bank A2
    identifier_prefix: "20"
    cutoff_time: "14:00"
    working_days: [Sunday]
    export_schema:` + validColumn,
		},
		{
			name: "duplicate_prefix",
			yaml: `
banks:
  - code: A
    display_name: Bank A
    identifier_prefix: "10"
    cutoff_time: "14:00"
    working_days: [Sunday]
    export_schema:` + validColumn + `
  - code: B
    display_name: Bank B
    identifier_prefix: "10"
    cutoff_time: "14:00"
    working_days: [Sunday]
    export_schema:` + validColumn,
		},
		{
			name: "non_numeric_prefix",
			yaml: `
banks:
  - code: A
    display_name: Bank A
    identifier_prefix: "XY"
    cutoff_time: "14:00"
    working_days: [Sunday]
    export_schema:` + validColumn,
		},
		{
			name: "unknown_working_day",
			yaml: `
banks:
  - code: A
    display_name: Bank A
    identifier_prefix: "10"
    cutoff_time: "14:00"
    working_days: [Funday]
    export_schema:` + validColumn,
		},
		{
			name: "bad_cutoff",
			yaml: `
banks:
  - code: A
    display_name: Bank A
    identifier_prefix: "10"
    cutoff_time: "25:99"
    working_days: [Sunday]
    export_schema:` + validColumn,
		},
		{
			name: "non_contiguous_positions",
			yaml: `
banks:
  - code: A
    display_name: Bank A
    identifier_prefix: "10"
    cutoff_time: "14:00"
    working_days: [Sunday]
    export_schema:
      - { position: 1, field_name: payee_name, header: Name, data_type: TEXT, required: true }
      - { position: 3, field_name: amount, header: Amount, data_type: CURRENCY, required: true }`,
		},
		{
			name: "duplicate_positions",
			yaml: `
banks:
  - code: A
    display_name: Bank A
    identifier_prefix: "10"
    cutoff_time: "14:00"
    working_days: [Sunday]
    export_schema:
      - { position: 1, field_name: payee_name, header: Name, data_type: TEXT, required: true }
      - { position: 1, field_name: amount, header: Amount, data_type: CURRENCY, required: true }`,
		},
		{
			name: "unknown_data_type",
			yaml: `
banks:
  - code: A
    display_name: Bank A
    identifier_prefix: "10"
    cutoff_time: "14:00"
    working_days: [Sunday]
    export_schema:
      - { position: 1, field_name: payee_name, header: Name, data_type: BLOB, required: true }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	got, err := ParseTimeOfDay("14:00")
	require.NoError(t, err)
	require.Equal(t, TimeOfDay{Hour: 14, Minute: 0}, got)

	day := time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC), got.On(day))

	_, err = ParseTimeOfDay("not-a-time")
	require.Error(t, err)
}
