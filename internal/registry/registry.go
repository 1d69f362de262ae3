package registry

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed banks.yaml
var defaultBanks []byte

type bankYAML struct {
	Code             string       `yaml:"code"`
	DisplayName      string       `yaml:"display_name"`
	IdentifierPrefix string       `yaml:"identifier_prefix"`
	SupportsBulk     bool         `yaml:"supports_bulk"`
	MaxBulkRecords   int          `yaml:"max_bulk_records"`
	CutoffTime       string       `yaml:"cutoff_time"`
	WorkingDays      []string     `yaml:"working_days"`
	FileExtension    string       `yaml:"file_extension"`
	SheetLabel       string       `yaml:"sheet_label"`
	ExportSchema     []columnYAML `yaml:"export_schema"`
}

type columnYAML struct {
	Position     int    `yaml:"position"`
	FieldName    string `yaml:"field_name"`
	Header       string `yaml:"header"`
	DataType     string `yaml:"data_type"`
	Required     bool   `yaml:"required"`
	MinLength    int    `yaml:"min_length"`
	MaxLength    int    `yaml:"max_length"`
	DefaultValue string `yaml:"default_value"`
}

type catalogYAML struct {
	Banks []bankYAML `yaml:"banks"`
}

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// Registry is the static catalog of supported banks. It is read-only after
// Load and safe for concurrent use.
type Registry struct {
	banks    []BankDefinition
	byCode   map[string]int
	byPrefix map[string]int
}

// Load builds a registry from the YAML catalog at path, or from the embedded
// default catalog when path is empty.
func Load(path string) (*Registry, error) {
	data := defaultBanks
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read bank catalog: %w", err)
		}
	}
	return Parse(data)
}

// Parse builds a registry from raw YAML catalog data, validating every
// definition before it is admitted.
func Parse(data []byte) (*Registry, error) {
	var catalog catalogYAML
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse bank catalog: %w", err)
	}
	if len(catalog.Banks) == 0 {
		return nil, fmt.Errorf("bank catalog is empty")
	}

	reg := &Registry{
		banks:    make([]BankDefinition, 0, len(catalog.Banks)),
		byCode:   make(map[string]int, len(catalog.Banks)),
		byPrefix: make(map[string]int, len(catalog.Banks)),
	}

	for _, raw := range catalog.Banks {
		bank, err := buildBank(raw)
		if err != nil {
			return nil, fmt.Errorf("bank %q: %w", raw.Code, err)
		}
		if _, exists := reg.byCode[bank.Code]; exists {
			return nil, fmt.Errorf("duplicate bank code %q", bank.Code)
		}
		if _, exists := reg.byPrefix[bank.IdentifierPrefix]; exists {
			return nil, fmt.Errorf("duplicate identifier prefix %q", bank.IdentifierPrefix)
		}
		reg.byCode[bank.Code] = len(reg.banks)
		reg.byPrefix[bank.IdentifierPrefix] = len(reg.banks)
		reg.banks = append(reg.banks, bank)
	}

	return reg, nil
}

func buildBank(raw bankYAML) (BankDefinition, error) {
	if raw.Code == "" {
		return BankDefinition{}, fmt.Errorf("missing code")
	}
	if raw.DisplayName == "" {
		return BankDefinition{}, fmt.Errorf("missing display_name")
	}
	if len(raw.IdentifierPrefix) != 2 || !allDigits(raw.IdentifierPrefix) {
		return BankDefinition{}, fmt.Errorf("identifier_prefix must be a 2-digit numeric string, got %q", raw.IdentifierPrefix)
	}
	if raw.MaxBulkRecords < 0 {
		return BankDefinition{}, fmt.Errorf("max_bulk_records must not be negative")
	}

	cutoff, err := ParseTimeOfDay(raw.CutoffTime)
	if err != nil {
		return BankDefinition{}, err
	}

	if len(raw.WorkingDays) == 0 {
		return BankDefinition{}, fmt.Errorf("missing working_days")
	}
	working := make(map[time.Weekday]bool, len(raw.WorkingDays))
	for _, name := range raw.WorkingDays {
		day, ok := weekdays[name]
		if !ok {
			return BankDefinition{}, fmt.Errorf("unknown working day %q", name)
		}
		working[day] = true
	}

	schema, err := buildSchema(raw.ExportSchema)
	if err != nil {
		return BankDefinition{}, err
	}

	ext := raw.FileExtension
	if ext == "" {
		ext = ".xlsx"
	}
	label := raw.SheetLabel
	if label == "" {
		label = "Payments"
	}

	return BankDefinition{
		Code:             raw.Code,
		DisplayName:      raw.DisplayName,
		IdentifierPrefix: raw.IdentifierPrefix,
		SupportsBulk:     raw.SupportsBulk,
		MaxBulkRecords:   raw.MaxBulkRecords,
		Cutoff:           cutoff,
		WorkingDays:      working,
		FileExtension:    ext,
		SheetLabel:       label,
		ExportSchema:     schema,
	}, nil
}

func buildSchema(raw []columnYAML) ([]ColumnDefinition, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing export_schema")
	}

	schema := make([]ColumnDefinition, 0, len(raw))
	for _, col := range raw {
		dataType := DataType(col.DataType)
		if !dataType.valid() {
			return nil, fmt.Errorf("column %q: unknown data type %q", col.FieldName, col.DataType)
		}
		if col.FieldName == "" {
			return nil, fmt.Errorf("column at position %d: missing field_name", col.Position)
		}
		schema = append(schema, ColumnDefinition{
			Position:     col.Position,
			FieldName:    col.FieldName,
			Header:       col.Header,
			DataType:     dataType,
			Required:     col.Required,
			MinLength:    col.MinLength,
			MaxLength:    col.MaxLength,
			DefaultValue: col.DefaultValue,
		})
	}

	sort.Slice(schema, func(i, j int) bool { return schema[i].Position < schema[j].Position })

	// Positions must be contiguous starting at 1.
	for i, col := range schema {
		if col.Position != i+1 {
			return nil, fmt.Errorf("column positions must be contiguous and unique, got %d at index %d", col.Position, i)
		}
	}

	return schema, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ByCode looks up a bank by its short code. A miss is not an error.
func (r *Registry) ByCode(code string) (BankDefinition, bool) {
	i, ok := r.byCode[code]
	if !ok {
		return BankDefinition{}, false
	}
	return r.banks[i], true
}

// ByIdentifierPrefix looks up a bank by the 2-digit bank code embedded in a
// structured account identifier.
func (r *Registry) ByIdentifierPrefix(prefix string) (BankDefinition, bool) {
	i, ok := r.byPrefix[prefix]
	if !ok {
		return BankDefinition{}, false
	}
	return r.banks[i], true
}

// All returns every bank in catalog order.
func (r *Registry) All() []BankDefinition {
	out := make([]BankDefinition, len(r.banks))
	copy(out, r.banks)
	return out
}

// BulkCapable returns the banks that accept bulk payment files.
func (r *Registry) BulkCapable() []BankDefinition {
	var out []BankDefinition
	for _, b := range r.banks {
		if b.SupportsBulk {
			out = append(out, b)
		}
	}
	return out
}
