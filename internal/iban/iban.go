// Package iban validates Saudi structured account identifiers: a 2-letter
// country marker, 2 check digits, a 2-digit bank code and 18 account
// characters, verified with the ISO 7064 MOD-97 checksum.
package iban

import (
	"fmt"
	"strings"

	"paybatch/internal/registry"
)

const (
	// Length is the fixed total length of a Saudi identifier.
	Length = 24

	countryMarker = "SA"

	checkDigitsStart = 2
	bankCodeStart    = 4
	accountStart     = 6
)

// BankResolver resolves the 2-digit bank code embedded in an identifier.
type BankResolver interface {
	ByIdentifierPrefix(prefix string) (registry.BankDefinition, bool)
}

// Result is the outcome of validating one identifier.
type Result struct {
	IsValid          bool
	Errors           []string
	Warnings         []string
	ResolvedBankCode string
	ResolvedBankName string
	AccountNumber    string
	CheckDigits      string
}

// Normalize strips all whitespace and uppercases the identifier.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// Validate checks the structure and MOD-97 checksum of an identifier and
// decodes its embedded bank code. Structural failures (wrong prefix, wrong
// length, bad characters) are reported without running the checksum, so
// malformed input is never conflated with a checksum mismatch. An identifier
// whose bank code is not in the catalog still validates, with a warning.
func Validate(input string, banks BankResolver) Result {
	var res Result

	id := Normalize(input)

	if id == "" {
		res.Errors = append(res.Errors, "identifier is empty")
		return res
	}
	if !strings.HasPrefix(id, countryMarker) {
		res.Errors = append(res.Errors, fmt.Sprintf("identifier must start with %q", countryMarker))
	}
	if len(id) != Length {
		res.Errors = append(res.Errors, fmt.Sprintf("identifier must be %d characters, got %d", Length, len(id)))
	}
	for _, r := range id {
		if (r < '0' || r > '9') && (r < 'A' || r > 'Z') {
			res.Errors = append(res.Errors, fmt.Sprintf("identifier contains invalid character %q", r))
			break
		}
	}
	if len(res.Errors) > 0 {
		return res
	}

	if remainder(id[4:]+id[:4]) != 1 {
		res.Errors = append(res.Errors, "checksum verification failed")
		return res
	}

	res.IsValid = true
	res.CheckDigits = id[checkDigitsStart:bankCodeStart]
	res.AccountNumber = id[accountStart:]

	prefix := id[bankCodeStart:accountStart]
	if banks != nil {
		if bank, ok := banks.ByIdentifierPrefix(prefix); ok {
			res.ResolvedBankCode = bank.Code
			res.ResolvedBankName = bank.DisplayName
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unrecognized bank code %q", prefix))
		}
	}

	return res
}

// remainder computes the MOD-97 remainder of the rearranged identifier,
// digit by digit so no big-integer arithmetic is needed. Letters expand to
// their numeric equivalents (A=10 .. Z=35) before folding into the remainder.
func remainder(s string) int {
	r := 0
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			r = (r*10 + int(ch-'0')) % 97
		default:
			v := int(ch-'A') + 10
			r = (r*100 + v) % 97
		}
	}
	return r
}

// Format groups a normalized identifier into blocks of 4 separated by
// spaces, for display only. It never affects validation.
func Format(input string) string {
	id := Normalize(input)
	var b strings.Builder
	for i, r := range id {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GenerateUnverified assembles a display-only identifier from a bank prefix
// and a raw account number, left-padding the account to 18 digits and using
// literal "00" check digits. The result is NOT checksummed and will not pass
// Validate; it exists only so entry forms can show a placeholder before a
// verified identifier is captured.
func GenerateUnverified(bankPrefix, accountNumber string) (string, error) {
	if len(bankPrefix) != 2 || !isDigits(bankPrefix) {
		return "", fmt.Errorf("bank prefix must be a 2-digit numeric string, got %q", bankPrefix)
	}
	account := Normalize(accountNumber)
	if account == "" {
		return "", fmt.Errorf("account number is empty")
	}
	if len(account) > Length-accountStart {
		return "", fmt.Errorf("account number %q exceeds %d characters", account, Length-accountStart)
	}
	if !isDigits(account) {
		return "", fmt.Errorf("account number must be numeric, got %q", account)
	}

	padded := strings.Repeat("0", Length-accountStart-len(account)) + account
	return countryMarker + "00" + bankPrefix + padded, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
