package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay/sitepay-backend-go/internal/domain/attendance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payment"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func mason() employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		Name:       "Kamal",
		Role:       "mason",
		DailyRate:  d(1200),
		JoinedDate: date("2024-01-15"),
		Active:     true,
		RateHistory: []employee.RateHistoryEntry{
			{RoleName: "mason", Rate: d(1000), EffectiveDate: date("2024-01-15")},
			{RoleName: "mason", Rate: d(1200), EffectiveDate: date("2024-06-01")},
		},
	}
}

func TestResolveRate(t *testing.T) {
	base := d(1000)
	history := []employee.RateHistoryEntry{
		{Rate: d(1000), EffectiveDate: date("2024-01-15")},
		{Rate: d(1200), EffectiveDate: date("2024-06-01")},
	}

	t.Run("empty history falls back to base rate", func(t *testing.T) {
		rate := ResolveRate(d(1500), nil, date("2024-03-01"))
		assert.True(t, d(1500).Equal(rate))
	})

	t.Run("date before all entries falls back to base rate", func(t *testing.T) {
		rate := ResolveRate(base, history, date("2024-01-01"))
		assert.True(t, base.Equal(rate))
	})

	t.Run("date between entries uses the earlier rate", func(t *testing.T) {
		rate := ResolveRate(base, history, date("2024-05-31"))
		assert.True(t, d(1000).Equal(rate))
	})

	t.Run("effective date itself uses the new rate", func(t *testing.T) {
		rate := ResolveRate(base, history, date("2024-06-01"))
		assert.True(t, d(1200).Equal(rate))
	})

	t.Run("date after all entries uses the latest rate", func(t *testing.T) {
		rate := ResolveRate(base, history, date("2024-12-31"))
		assert.True(t, d(1200).Equal(rate))
	})

	t.Run("time of day does not change the outcome", func(t *testing.T) {
		target := time.Date(2024, 6, 1, 23, 59, 0, 0, time.FixedZone("X", 5*3600))
		rate := ResolveRate(base, history, target)
		assert.True(t, d(1200).Equal(rate))
	})
}

func TestRecordEarnings(t *testing.T) {
	emp := mason()

	t.Run("present day pays the full resolved rate", func(t *testing.T) {
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent}
		e := RecordEarnings(rec, emp)
		assert.True(t, d(1200).Equal(e.Amount))
		assert.Equal(t, 10.0, e.Hours)
	})

	t.Run("present day before increment pays the old rate", func(t *testing.T) {
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-03-01"), Status: attendance.StatusPresent}
		e := RecordEarnings(rec, emp)
		assert.True(t, d(1000).Equal(e.Amount))
	})

	t.Run("half day pays half the rate", func(t *testing.T) {
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusHalfDay}
		e := RecordEarnings(rec, emp)
		assert.True(t, d(600).Equal(e.Amount))
		assert.Equal(t, 5.0, e.Hours)
	})

	t.Run("absent pays nothing", func(t *testing.T) {
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusAbsent}
		e := RecordEarnings(rec, emp)
		assert.True(t, e.Amount.IsZero())
		assert.Equal(t, 0.0, e.Hours)
	})

	t.Run("explicit full-day working hours pay the full rate", func(t *testing.T) {
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent, WorkingHours: floatPtr(10)}
		e := RecordEarnings(rec, emp)
		assert.True(t, d(1200).Equal(e.Amount))
		assert.Equal(t, 10.0, e.Hours)
	})

	t.Run("explicit working hours pay an hourly tenth of the rate", func(t *testing.T) {
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusHalfDay, WorkingHours: floatPtr(5)}
		e := RecordEarnings(rec, emp)
		assert.True(t, d(600).Equal(e.Amount))
	})

	t.Run("explicit zero hours pay nothing even when marked present", func(t *testing.T) {
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent, WorkingHours: floatPtr(0)}
		e := RecordEarnings(rec, emp)
		assert.True(t, e.Amount.IsZero())
	})

	t.Run("record tagged with a secondary role resolves that role's rate", func(t *testing.T) {
		emp := mason()
		emp.SecondaryRoles = []employee.SecondaryRole{{Name: "painter", DailyRate: d(800)}}
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent, Role: strPtr("painter")}
		e := RecordEarnings(rec, emp)
		assert.True(t, d(800).Equal(e.Amount))
	})

	t.Run("record tagged with an unknown role falls back to the primary role", func(t *testing.T) {
		rec := attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent, Role: strPtr("welder")}
		e := RecordEarnings(rec, emp)
		assert.True(t, d(1200).Equal(e.Amount))
	})
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		status     attendance.Status
		hours      float64
	}{
		{"ten hour day is present", "08:00", "18:00", attendance.StatusPresent, 10},
		{"more than ten hours is present", "07:00", "19:30", attendance.StatusPresent, 12.5},
		{"five hours is a half day", "08:00", "13:00", attendance.StatusHalfDay, 5},
		{"one minute is a half day", "08:00", "08:01", attendance.StatusHalfDay, 1.0 / 60.0},
		{"equal times are absent", "09:00", "09:00", attendance.StatusAbsent, 0},
		{"end before start clamps to absent", "10:00", "09:00", attendance.StatusAbsent, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, hours, err := DeriveStatus(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
			assert.InDelta(t, tt.hours, hours, 1e-9)
		})
	}

	t.Run("malformed time is an error", func(t *testing.T) {
		_, _, err := DeriveStatus("8 am", "18:00")
		assert.Error(t, err)
	})
}

func TestApplyIncrement(t *testing.T) {
	now := date("2024-06-15")

	t.Run("first increment backfills the rate since the join date", func(t *testing.T) {
		emp := employee.Employee{
			ID:         "emp-2",
			Role:       "laborer",
			DailyRate:  d(1000),
			JoinedDate: date("2024-01-15"),
		}

		updated, entries, err := ApplyIncrement(emp, "laborer", d(1200), date("2024-06-01"), now)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.True(t, d(1000).Equal(entries[0].Rate))
		assert.Equal(t, date("2024-01-15"), entries[0].EffectiveDate)
		assert.True(t, d(1200).Equal(entries[1].Rate))
		assert.Equal(t, date("2024-06-01"), entries[1].EffectiveDate)

		assert.True(t, d(1200).Equal(updated.DailyRate))

		// Earlier attendance still resolves to the old rate.
		rate := ResolveRate(updated.DailyRate, updated.RateHistory, date("2024-03-01"))
		assert.True(t, d(1000).Equal(rate))
	})

	t.Run("later increments do not backfill again", func(t *testing.T) {
		emp := mason()
		_, entries, err := ApplyIncrement(emp, "mason", d(1400), date("2024-08-01"), now)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, d(1400).Equal(entries[0].Rate))
	})

	t.Run("future increment does not change the current rate", func(t *testing.T) {
		emp := mason()
		updated, _, err := ApplyIncrement(emp, "mason", d(1500), date("2024-12-01"), now)
		require.NoError(t, err)
		assert.True(t, d(1200).Equal(updated.DailyRate))

		// It still resolves once its date is reached.
		rate := ResolveRate(updated.DailyRate, updated.RateHistory, date("2024-12-25"))
		assert.True(t, d(1500).Equal(rate))
	})

	t.Run("increment effective today is promoted", func(t *testing.T) {
		emp := mason()
		updated, _, err := ApplyIncrement(emp, "mason", d(1300), now, now)
		require.NoError(t, err)
		assert.True(t, d(1300).Equal(updated.DailyRate))
	})

	t.Run("secondary role increment leaves the primary rate alone", func(t *testing.T) {
		emp := mason()
		emp.SecondaryRoles = []employee.SecondaryRole{{Name: "painter", DailyRate: d(800)}}

		updated, entries, err := ApplyIncrement(emp, "painter", d(900), date("2024-06-01"), now)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, d(1200).Equal(updated.DailyRate))
		assert.True(t, d(900).Equal(updated.SecondaryRoles[0].DailyRate))
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		emp := mason()
		_, _, err := ApplyIncrement(emp, "welder", d(900), date("2024-06-01"), now)
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("empty role targets the primary role", func(t *testing.T) {
		emp := mason()
		updated, _, err := ApplyIncrement(emp, "", d(1300), date("2024-06-10"), now)
		require.NoError(t, err)
		assert.True(t, d(1300).Equal(updated.DailyRate))
	})
}

func TestSummarizeEmployee(t *testing.T) {
	emp := mason()
	records := []attendance.Attendance{
		{EmployeeID: emp.ID, Date: date("2024-03-01"), Status: attendance.StatusPresent},
		{EmployeeID: emp.ID, Date: date("2024-03-02"), Status: attendance.StatusHalfDay},
		{EmployeeID: emp.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent},
		{EmployeeID: emp.ID, Date: date("2024-07-02"), Status: attendance.StatusAbsent},
	}
	payments := []payment.Payment{
		{EmployeeID: emp.ID, Amount: d(1500), Date: date("2024-07-05")},
		{EmployeeID: emp.ID, Amount: d(500), Date: date("2024-07-20")},
	}

	s := SummarizeEmployee(emp, records, payments)

	// 1000 + 500 + 1200 + 0
	assert.True(t, d(2700).Equal(s.TotalEarned))
	assert.True(t, d(2000).Equal(s.TotalPaid))
	assert.True(t, d(700).Equal(s.Balance))
	assert.Equal(t, 25.0, s.TotalHours)
	assert.Equal(t, 2, s.DaysPresent)
	assert.Equal(t, 1, s.DaysHalf)

	t.Run("overpayment yields a negative balance", func(t *testing.T) {
		s := SummarizeEmployee(emp, nil, payments)
		assert.True(t, d(-2000).Equal(s.Balance))
	})
}

func TestBuildReport(t *testing.T) {
	mason := mason()
	painter := employee.Employee{
		ID:        "emp-2",
		Name:      "Nimal",
		Role:      "painter",
		DailyRate: d(800),
	}
	employees := []employee.Employee{mason, painter}

	records := []attendance.Attendance{
		{EmployeeID: mason.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent, SiteID: strPtr("site-a")},
		{EmployeeID: mason.ID, Date: date("2024-07-02"), Status: attendance.StatusHalfDay, SiteID: strPtr("site-b")},
		{EmployeeID: painter.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent, SiteID: strPtr("site-a")},
		// Outside the range.
		{EmployeeID: mason.ID, Date: date("2024-08-01"), Status: attendance.StatusPresent, SiteID: strPtr("site-a")},
		// Employee not in the set.
		{EmployeeID: "gone", Date: date("2024-07-01"), Status: attendance.StatusPresent, SiteID: strPtr("site-a")},
	}

	t.Run("all sites", func(t *testing.T) {
		report := BuildReport(records, employees, date("2024-07-01"), date("2024-07-31"), "")
		// 1200 + 600 + 800
		assert.True(t, d(2600).Equal(report.TotalCost))
		require.Len(t, report.PerEmployee, 2)
		assert.Equal(t, 15.0, report.PerEmployee[mason.ID].Hours)
		assert.True(t, d(1800).Equal(report.PerEmployee[mason.ID].Cost))
		assert.Equal(t, "Nimal", report.PerEmployee[painter.ID].Name)
	})

	t.Run("single site", func(t *testing.T) {
		report := BuildReport(records, employees, date("2024-07-01"), date("2024-07-31"), "site-a")
		assert.True(t, d(2000).Equal(report.TotalCost))
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		report := BuildReport(records, employees, date("2024-07-01"), date("2024-07-01"), "")
		assert.True(t, d(2000).Equal(report.TotalCost))
	})

	t.Run("records without a site are excluded by a site filter", func(t *testing.T) {
		recs := []attendance.Attendance{
			{EmployeeID: mason.ID, Date: date("2024-07-01"), Status: attendance.StatusPresent},
		}
		report := BuildReport(recs, employees, date("2024-07-01"), date("2024-07-31"), "site-a")
		assert.True(t, report.TotalCost.IsZero())
		assert.Empty(t, report.PerEmployee)
	})
}

func TestDailyPaymentTotal(t *testing.T) {
	payments := []payment.Payment{
		{Amount: d(1000), Date: date("2024-07-01")},
		{Amount: d(500), Date: date("2024-07-01")},
		{Amount: d(750), Date: date("2024-07-02")},
	}

	assert.True(t, d(1500).Equal(DailyPaymentTotal(payments, date("2024-07-01"))))
	assert.True(t, d(750).Equal(DailyPaymentTotal(payments, date("2024-07-02"))))
	assert.True(t, DailyPaymentTotal(payments, date("2024-07-03")).IsZero())
}
