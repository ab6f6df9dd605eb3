package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/artneelam/studio-api/internal/models"
)

func day(offset int, now time.Time) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func marks(studentID string, present, late, absent int) []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, 0, present+late+absent)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	add := func(status string, count int) {
		for i := 0; i < count; i++ {
			records = append(records, models.AttendanceRecord{
				StudentID: studentID,
				Date:      base.AddDate(0, 0, len(records)).Format("2006-01-02"),
				Status:    status,
			})
		}
	}
	add(models.AttendancePresent, present)
	add(models.AttendanceLate, late)
	add(models.AttendanceAbsent, absent)
	return records
}

func TestSummarizeEmptyYieldsZeroPercent(t *testing.T) {
	summary := Summarize(nil)
	require.Equal(t, 0, summary.Percent)
	require.Equal(t, 0, summary.TotalMarked)
}

func TestSummarizeCountsLateAsAttended(t *testing.T) {
	summary := Summarize(marks("s1", 7, 2, 1))
	require.Equal(t, 7, summary.Present)
	require.Equal(t, 2, summary.Late)
	require.Equal(t, 1, summary.Absent)
	require.Equal(t, 10, summary.TotalMarked)
	require.Equal(t, 90, summary.Percent)
}

func TestSummarizeCountsDistinctDatesOnce(t *testing.T) {
	records := []models.AttendanceRecord{
		{StudentID: "s1", Date: "2026-01-05", Status: models.AttendancePresent},
		{StudentID: "s1", Date: "2026-01-05", Status: models.AttendanceLate},
	}
	summary := Summarize(records)
	require.Equal(t, 1, summary.TotalMarked)
}

func TestCertificateEligibilityBoundary(t *testing.T) {
	require.False(t, CertificateEligible(10, marks("s1", 9, 0, 3)), "one session short must not be eligible")
	require.True(t, CertificateEligible(10, marks("s1", 10, 0, 0)), "exactly-equal counts as eligible")
	require.True(t, CertificateEligible(10, marks("s1", 8, 2, 0)), "late marks count toward completion")
}

func TestCertificateEligibleZeroSessionsTriviallyTrue(t *testing.T) {
	require.True(t, CertificateEligible(0, nil))
}

func TestSessionsRemainingClampsAtZero(t *testing.T) {
	// Scenario: 48 total sessions, 50 present + 2 absent.
	records := marks("s1", 50, 0, 2)
	require.Equal(t, 50, SessionsAttended(records))
	require.Equal(t, 0, SessionsRemaining(48, records))
	require.True(t, CertificateEligible(48, records))
}

func TestFeeProgressScenario(t *testing.T) {
	payments := []models.Payment{
		{Amount: 4000, Status: models.PaymentPaid},
		{Amount: 4000, Status: models.PaymentPending},
	}
	require.Equal(t, 33, FeeProgress(payments, 12000))
}

func TestFeeProgressZeroFeeYieldsZero(t *testing.T) {
	payments := []models.Payment{{Amount: 500, Status: models.PaymentPaid}}
	require.Equal(t, 0, FeeProgress(payments, 0))
}

func TestFeeProgressOverpaidExceedsHundredUntilClamped(t *testing.T) {
	payments := []models.Payment{{Amount: 15000, Status: models.PaymentPaid}}
	raw := FeeProgress(payments, 12000)
	require.Equal(t, 125, raw)
	require.Equal(t, 100, ClampPercent(raw))
}

func TestDiscountedFeePercentWins(t *testing.T) {
	// Scenario: 12000 fee at 10% -> 1200 off, 10800 final.
	require.Equal(t, 10800.0, DiscountedFee(12000, 10, 0))
}

func TestDiscountedFeeFlatAmount(t *testing.T) {
	require.Equal(t, 11000.0, DiscountedFee(12000, 0, 1000))
}

func TestDiscountedFeeNeverNegative(t *testing.T) {
	require.Equal(t, 0.0, DiscountedFee(5000, 0, 9000))
	require.Equal(t, 0.0, DiscountedFee(5000, 200, 0))
}

func TestValidityDaysLeft(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	require.Equal(t, 0, ValidityDaysLeft("2026-03-10", now), "end date equal to today is 0, not negative")
	require.Equal(t, 0, ValidityDaysLeft("2026-03-01", now))
	require.Equal(t, 5, ValidityDaysLeft("2026-03-15", now))
	require.Equal(t, 0, ValidityDaysLeft("", now))
}

func TestUpcomingBirthdaysExcludesPassedOccurrence(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	students := []models.Student{
		{ID: "past", Name: "Passed", DOB: "2015-06-10"},     // 5 days ago this year
		{ID: "soon", Name: "Soon", DOB: "2014-06-20"},       // in 5 days
		{ID: "today", Name: "Today", DOB: "2016-06-15"},     // today
		{ID: "far", Name: "Far", DOB: "2013-08-30"},         // beyond the window
		{ID: "nodob", Name: "NoDOB"},                        // skipped
	}

	upcoming := UpcomingBirthdays(students, now, 30)
	ids := make([]string, 0, len(upcoming))
	for _, s := range upcoming {
		ids = append(ids, s.ID)
	}

	// A birthday 5 days in the past is within 30 days in absolute distance but
	// is not rolled forward to next year; only forward occurrences qualify.
	require.NotContains(t, ids, "past")
	require.Contains(t, ids, "soon")
	require.Contains(t, ids, "today")
	require.NotContains(t, ids, "far")
	require.NotContains(t, ids, "nodob")
}

func TestAutomationCounters(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	payments := []models.Payment{
		{Status: models.PaymentPending, Date: day(-2, now)}, // overdue
		{Status: models.PaymentPending, Date: day(0, now)},  // due today
		{Status: models.PaymentPending, Date: day(3, now)},  // inside the 3-day window
		{Status: models.PaymentPending, Date: day(4, now)},  // outside the window
		{Status: models.PaymentPaid, Date: day(-2, now)},    // settled, ignored
	}
	students := []models.Student{
		{ID: "done", Status: models.StudentStatusActive, TotalSessions: 2, ValidityEnd: day(10, now)},
		{ID: "short", Status: models.StudentStatusActive, TotalSessions: 5, ValidityEnd: day(-1, now)},
		{ID: "gone", Status: models.StudentStatusInactive, TotalSessions: 1, ValidityEnd: day(-5, now)},
	}
	attendance := []models.AttendanceRecord{
		{StudentID: "done", Date: day(-3, now), Status: models.AttendancePresent},
		{StudentID: "done", Date: day(-2, now), Status: models.AttendanceLate},
		{StudentID: "short", Date: day(-2, now), Status: models.AttendancePresent},
		{StudentID: "gone", Date: day(-2, now), Status: models.AttendancePresent},
	}

	counters := AutomationCounters(payments, students, attendance, now)
	require.Equal(t, 2, counters.FeesDueSoon)
	require.Equal(t, 1, counters.OverduePayments)
	require.Equal(t, 1, counters.CertificatesReady, "inactive students never count")
	require.Equal(t, 1, counters.ExpiredValidity)
}

func TestNextDuePayment(t *testing.T) {
	payments := []models.Payment{
		{ID: "late", Status: models.PaymentPending, Date: "2026-04-10"},
		{ID: "first", Status: models.PaymentPending, Date: "2026-03-01"},
		{ID: "paid", Status: models.PaymentPaid, Date: "2026-01-01"},
	}

	next, ok := NextDuePayment(payments)
	require.True(t, ok)
	require.Equal(t, "first", next.ID)

	_, ok = NextDuePayment([]models.Payment{{Status: models.PaymentPaid}})
	require.False(t, ok)
}

func TestMonthRevenue(t *testing.T) {
	now := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{Amount: 3000, Status: models.PaymentPaid, Date: "2026-07-02"},
		{Amount: 2000, Status: models.PaymentPaid, Date: "2026-06-28"},
		{Amount: 1000, Status: models.PaymentPending, Date: "2026-07-05"},
	}
	require.Equal(t, 3000.0, MonthRevenue(payments, now))
}

func TestExpenseCategoryTotalsFallsBackToOther(t *testing.T) {
	expenses := []models.Expense{
		{Category: "Rent", Amount: 20000},
		{Category: "Rent", Amount: 5000},
		{Category: "Crypto", Amount: 999},
	}
	totals := ExpenseCategoryTotals(expenses)
	require.Equal(t, 25000.0, totals["Rent"])
	require.Equal(t, 999.0, totals["Other"])
}
