// Package schedule decides whether a bank can still accept a submission on a
// given day. The reference time is always injected by the caller; nothing
// here reads the process clock.
package schedule

import (
	"time"

	"paybatch/internal/registry"
)

// Assessment describes a bank's processing window relative to a reference time.
type Assessment struct {
	IsWorkingDay    bool
	CanAcceptToday  bool
	TimeUntilCutoff *time.Duration
}

// Assess evaluates the bank's working-day set and cutoff against now.
// The cutoff is a wall-clock time on the same calendar day as now.
func Assess(bank registry.BankDefinition, now time.Time) Assessment {
	a := Assessment{
		IsWorkingDay: bank.IsWorkingDay(now.Weekday()),
	}

	cutoff := bank.Cutoff.On(now)
	if a.IsWorkingDay && now.Before(cutoff) {
		a.CanAcceptToday = true
		remaining := cutoff.Sub(now)
		a.TimeUntilCutoff = &remaining
	}

	return a
}

// NextWindow returns the next instant at which the bank accepts submissions:
// today's cutoff when the bank can still accept today, otherwise the cutoff
// of the next working day. The zero time is returned if the bank has no
// working days at all.
func NextWindow(bank registry.BankDefinition, now time.Time) time.Time {
	if Assess(bank, now).CanAcceptToday {
		return bank.Cutoff.On(now)
	}

	for i := 1; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		if bank.IsWorkingDay(day.Weekday()) {
			return bank.Cutoff.On(day)
		}
	}

	return time.Time{}
}
