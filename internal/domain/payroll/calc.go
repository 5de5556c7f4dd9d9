package payroll

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepay/sitepay-backend-go/internal/domain/attendance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payment"
)

// A full working day is ten hours; a half day is five.
const (
	FullDayHours = 10.0
	HalfDayHours = 5.0
)

var ErrUnknownRole = errors.New("employee does not hold the requested role")

// Earnings is the money and hours a single attendance record is worth.
type Earnings struct {
	Amount decimal.Decimal
	Hours  float64
}

// Summary aggregates one employee's attendance and payments across all time.
type Summary struct {
	TotalEarned decimal.Decimal
	TotalPaid   decimal.Decimal
	Balance     decimal.Decimal
	TotalHours  float64
	DaysPresent int
	DaysHalf    int
}

// ReportEntry is one employee's share of a labor cost report.
type ReportEntry struct {
	Name  string
	Hours float64
	Cost  decimal.Decimal
}

// Report is the labor cost over a date range, broken down per employee.
type Report struct {
	TotalCost   decimal.Decimal
	PerEmployee map[string]ReportEntry
}

// dateOnly strips the time-of-day component so comparisons are made on
// calendar dates regardless of how the timestamp was produced.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveRate returns the daily rate in force on target: the most recent
// history entry whose effective date is on or before target, or base when
// no entry qualifies.
func ResolveRate(base decimal.Decimal, history []employee.RateHistoryEntry, target time.Time) decimal.Decimal {
	day := dateOnly(target)

	rate := base
	var found bool
	var bestDate time.Time
	for _, entry := range history {
		d := dateOnly(entry.EffectiveDate)
		if d.After(day) {
			continue
		}
		// Same-day entries resolve to the most recently recorded one.
		if !found || !d.Before(bestDate) {
			rate, bestDate, found = entry.Rate, d, true
		}
	}
	return rate
}

// ApplyIncrement records a new daily rate for one of the employee's roles.
// When the role has no history yet, the rate in force since the join date
// is backfilled first so earlier attendance keeps resolving to the old
// rate. The returned entries are the rows to persist, in insertion order.
// The role's current rate is promoted only when the increment is already
// effective; a future-dated increment stays dormant until its date is
// reached.
func ApplyIncrement(emp employee.Employee, roleName string, newRate decimal.Decimal, effective, now time.Time) (employee.Employee, []employee.RateHistoryEntry, error) {
	if roleName == "" {
		roleName = emp.Role
	}

	oldRate, ok := emp.RateForRole(roleName)
	if !ok {
		return emp, nil, fmt.Errorf("%w: %s", ErrUnknownRole, roleName)
	}

	var entries []employee.RateHistoryEntry
	if len(emp.HistoryForRole(roleName)) == 0 {
		entries = append(entries, employee.RateHistoryEntry{
			RoleName:      roleName,
			Rate:          oldRate,
			EffectiveDate: dateOnly(emp.JoinedDate),
		})
	}
	increment := employee.RateHistoryEntry{
		RoleName:      roleName,
		Rate:          newRate,
		EffectiveDate: dateOnly(effective),
	}
	entries = append(entries, increment)

	active := !dateOnly(effective).After(dateOnly(now))

	if roleName == emp.Role {
		emp.RateHistory = append(emp.RateHistory, entries...)
		if active {
			emp.DailyRate = newRate
		}
		return emp, entries, nil
	}

	roles := make([]employee.SecondaryRole, len(emp.SecondaryRoles))
	copy(roles, emp.SecondaryRoles)
	for i := range roles {
		if roles[i].Name != roleName {
			continue
		}
		roles[i].History = append(roles[i].History, entries...)
		if active {
			roles[i].DailyRate = newRate
		}
	}
	emp.SecondaryRoles = roles
	return emp, entries, nil
}

// RecordEarnings computes the money and hours a single attendance record
// is worth. The rate is resolved against the role's history as of the
// record's date; records tagged with a role the employee no longer holds
// fall back to the primary role. Explicit working hours are paid at an
// hourly rate of a tenth of the daily rate; otherwise the status decides.
func RecordEarnings(rec attendance.Attendance, emp employee.Employee) Earnings {
	role := emp.Role
	if rec.Role != nil && *rec.Role != "" {
		if _, ok := emp.RateForRole(*rec.Role); ok {
			role = *rec.Role
		}
	}

	base, _ := emp.RateForRole(role)
	rate := ResolveRate(base, emp.HistoryForRole(role), rec.Date)

	if rec.WorkingHours != nil {
		hours := *rec.WorkingHours
		amount := rate.Mul(decimal.NewFromFloat(hours)).Div(decimal.NewFromFloat(FullDayHours))
		return Earnings{Amount: amount, Hours: hours}
	}

	switch rec.Status {
	case attendance.StatusPresent:
		return Earnings{Amount: rate, Hours: FullDayHours}
	case attendance.StatusHalfDay:
		return Earnings{Amount: rate.Div(decimal.NewFromInt(2)), Hours: HalfDayHours}
	default:
		return Earnings{Amount: decimal.Zero, Hours: 0}
	}
}

// DeriveStatus turns a clock-in and clock-out time into an attendance
// status and the hours worked. A negative span counts as zero hours.
func DeriveStatus(start, end string) (attendance.Status, float64, error) {
	st, err := time.Parse("15:04", start)
	if err != nil {
		return "", 0, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	en, err := time.Parse("15:04", end)
	if err != nil {
		return "", 0, fmt.Errorf("invalid end time %q: %w", end, err)
	}

	hours := en.Sub(st).Hours()
	if hours < 0 {
		hours = 0
	}

	switch {
	case hours >= FullDayHours:
		return attendance.StatusPresent, hours, nil
	case hours > 0:
		return attendance.StatusHalfDay, hours, nil
	default:
		return attendance.StatusAbsent, 0, nil
	}
}

// SummarizeEmployee aggregates everything the employee has earned, been
// paid, and worked. Balance is earned minus paid and may be negative.
func SummarizeEmployee(emp employee.Employee, records []attendance.Attendance, payments []payment.Payment) Summary {
	s := Summary{
		TotalEarned: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}

	for _, rec := range records {
		e := RecordEarnings(rec, emp)
		s.TotalEarned = s.TotalEarned.Add(e.Amount)
		s.TotalHours += e.Hours
		switch rec.Status {
		case attendance.StatusPresent:
			s.DaysPresent++
		case attendance.StatusHalfDay:
			s.DaysHalf++
		}
	}

	for _, p := range payments {
		s.TotalPaid = s.TotalPaid.Add(p.Amount)
	}

	s.Balance = s.TotalEarned.Sub(s.TotalPaid)
	return s
}

// BuildReport totals the labor cost of attendance records falling inside
// the inclusive date range, optionally restricted to one site. Records
// whose employee is not in the given set are skipped.
func BuildReport(records []attendance.Attendance, employees []employee.Employee, start, end time.Time, siteID string) Report {
	byID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	from, to := dateOnly(start), dateOnly(end)
	report := Report{
		TotalCost:   decimal.Zero,
		PerEmployee: make(map[string]ReportEntry),
	}

	for _, rec := range records {
		day := dateOnly(rec.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		if siteID != "" && (rec.SiteID == nil || *rec.SiteID != siteID) {
			continue
		}
		emp, ok := byID[rec.EmployeeID]
		if !ok {
			continue
		}

		e := RecordEarnings(rec, emp)
		entry := report.PerEmployee[rec.EmployeeID]
		entry.Name = emp.Name
		entry.Hours += e.Hours
		entry.Cost = entry.Cost.Add(e.Amount)
		report.PerEmployee[rec.EmployeeID] = entry
		report.TotalCost = report.TotalCost.Add(e.Amount)
	}

	return report
}

// DailyPaymentTotal sums payments made on exactly the given calendar date.
func DailyPaymentTotal(payments []payment.Payment, date time.Time) decimal.Decimal {
	day := dateOnly(date)
	total := decimal.Zero
	for _, p := range payments {
		if dateOnly(p.Date).Equal(day) {
			total = total.Add(p.Amount)
		}
	}
	return total
}
