package registry

import (
	"fmt"
	"time"
)

// DataType describes how an exported cell value is typed in the bank file.
type DataType string

const (
	TypeText     DataType = "TEXT"
	TypeNumber   DataType = "NUMBER"
	TypeDate     DataType = "DATE"
	TypeCurrency DataType = "CURRENCY"
)

func (d DataType) valid() bool {
	switch d {
	case TypeText, TypeNumber, TypeDate, TypeCurrency:
		return true
	}
	return false
}

// TimeOfDay is a bank cutoff expressed as a local wall-clock time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

// On returns the cutoff instant on the calendar day of the given time.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ColumnDefinition is one column of a bank's export file layout.
type ColumnDefinition struct {
	Position     int
	FieldName    string
	Header       string
	DataType     DataType
	Required     bool
	MinLength    int
	MaxLength    int
	DefaultValue string
}

// BankDefinition holds the processing rules for one supported bank.
// Definitions are loaded once at startup and never mutated.
type BankDefinition struct {
	Code             string
	DisplayName      string
	IdentifierPrefix string
	SupportsBulk     bool
	MaxBulkRecords   int // 0 means unbounded
	Cutoff           TimeOfDay
	WorkingDays      map[time.Weekday]bool
	FileExtension    string
	SheetLabel       string
	ExportSchema     []ColumnDefinition
}

// IsWorkingDay reports whether the bank processes submissions on the given weekday.
func (b BankDefinition) IsWorkingDay(day time.Weekday) bool {
	return b.WorkingDays[day]
}
