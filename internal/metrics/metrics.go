// Package metrics implements the derived-data computations the studio pages
// share: attendance rates, fee progress, certificate eligibility, validity
// countdowns and the dashboard automation counters. Every function is pure and
// operates over already-fetched rows; error handling stays at the fetch
// boundary.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/artneelam/studio-api/internal/models"
)

const isoDay = "2006-01-02"

// AttendanceSummary is the per-student breakdown of attendance marks.
type AttendanceSummary struct {
	Present     int `json:"present"`
	Late        int `json:"late"`
	Absent      int `json:"absent"`
	TotalMarked int `json:"total_marked"`
	Percent     int `json:"percent"`
}

// Summarize computes counts and the attendance percentage over the given
// records. Percent counts late marks as attended and is 0 for an empty set,
// never NaN. TotalMarked counts distinct dates, which under the one-mark-per-day
// upsert rule equals the number of records.
func Summarize(records []models.AttendanceRecord) AttendanceSummary {
	summary := AttendanceSummary{}
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		switch record.Status {
		case models.AttendancePresent:
			summary.Present++
		case models.AttendanceLate:
			summary.Late++
		case models.AttendanceAbsent:
			summary.Absent++
		}
		seen[record.Date] = struct{}{}
	}

	summary.TotalMarked = len(seen)
	if summary.TotalMarked > 0 {
		summary.Percent = int(math.Round(float64(summary.Present+summary.Late) / float64(summary.TotalMarked) * 100))
	}

	return summary
}

// SessionsAttended counts sessions the student was present or late for.
func SessionsAttended(records []models.AttendanceRecord) int {
	summary := Summarize(records)
	return summary.Present + summary.Late
}

// SessionsRemaining returns how many of totalSessions are still unused, never
// negative.
func SessionsRemaining(totalSessions int, records []models.AttendanceRecord) int {
	remaining := totalSessions - SessionsAttended(records)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CertificateEligible reports whether the student has attended enough sessions
// for a completion certificate. Exactly-equal counts as eligible, and a course
// with zero total sessions is trivially complete.
func CertificateEligible(totalSessions int, records []models.AttendanceRecord) bool {
	return SessionsAttended(records) >= totalSessions
}

// FeeProgress returns the percentage of feeAmount covered by paid payments.
// A zero fee yields 0. The raw value may exceed 100 when overpaid; callers
// clamp only for display via ClampPercent.
func FeeProgress(payments []models.Payment, feeAmount float64) int {
	if feeAmount <= 0 {
		return 0
	}
	return int(math.Round(TotalCollected(payments) / feeAmount * 100))
}

// ClampPercent bounds a percentage to [0, 100] for progress-bar rendering.
func ClampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// DiscountedFee applies exactly one discount field to feeAmount. A nonzero
// percent wins over a flat amount, and the result never goes below zero.
func DiscountedFee(feeAmount, discountPercent, discountAmount float64) float64 {
	discount := discountAmount
	if discountPercent > 0 {
		discount = math.Round(feeAmount * discountPercent / 100)
	}

	final := feeAmount - discount
	if final < 0 {
		return 0
	}
	return final
}

// TotalCollected sums the amounts of paid payments.
func TotalCollected(payments []models.Payment) float64 {
	var total float64
	for _, payment := range payments {
		if payment.Status == models.PaymentPaid {
			total += payment.Amount
		}
	}
	return total
}

// TotalPending sums the amounts of pending payments.
func TotalPending(payments []models.Payment) float64 {
	var total float64
	for _, payment := range payments {
		if payment.Status == models.PaymentPending {
			total += payment.Amount
		}
	}
	return total
}

// MonthRevenue sums paid payments dated in the month containing now.
func MonthRevenue(payments []models.Payment, now time.Time) float64 {
	monthKey := now.Format("2006-01")

	var total float64
	for _, payment := range payments {
		if payment.Status == models.PaymentPaid && len(payment.Date) >= len(monthKey) && payment.Date[:len(monthKey)] == monthKey {
			total += payment.Amount
		}
	}
	return total
}

// NextDuePayment returns the earliest pending payment by date. The second
// return value is false when nothing is pending.
func NextDuePayment(payments []models.Payment) (models.Payment, bool) {
	pending := make([]models.Payment, 0, len(payments))
	for _, payment := range payments {
		if payment.Status == models.PaymentPending {
			pending = append(pending, payment)
		}
	}
	if len(pending) == 0 {
		return models.Payment{}, false
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].Date < pending[j].Date })
	return pending[0], true
}

// ValidityDaysLeft counts whole days from now until the validity end date,
// never negative. An end date equal to today returns 0, as does a missing or
// malformed date.
func ValidityDaysLeft(validityEnd string, now time.Time) int {
	end, err := time.Parse(isoDay, validityEnd)
	if err != nil {
		return 0
	}

	today, _ := time.Parse(isoDay, now.Format(isoDay))
	days := int(math.Ceil(end.Sub(today).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// UpcomingBirthdays returns students whose birthday occurs within windowDays
// from now. Only this year's occurrence is considered: a birthday that already
// passed this year is excluded rather than rolled forward to next year, which
// keeps the list strictly forward-looking.
func UpcomingBirthdays(students []models.Student, now time.Time, windowDays int) []models.Student {
	today, _ := time.Parse(isoDay, now.Format(isoDay))
	window := time.Duration(windowDays) * 24 * time.Hour

	upcoming := make([]models.Student, 0)
	for _, student := range students {
		dob, err := time.Parse(isoDay, student.DOB)
		if err != nil {
			continue
		}

		thisYear := time.Date(today.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
		diff := thisYear.Sub(today)
		if diff >= 0 && diff <= window {
			upcoming = append(upcoming, student)
		}
	}
	return upcoming
}

// Counters are the dashboard automation numbers.
type Counters struct {
	FeesDueSoon       int `json:"fees_due_soon"`
	OverduePayments   int `json:"overdue_payments"`
	CertificatesReady int `json:"certificates_ready"`
	ExpiredValidity   int `json:"expired_validity"`
}

// AutomationCounters derives the dashboard automation numbers from the fetched
// row sets. Fees count as due soon when a pending payment falls within the next
// three days; certificates count active students who completed their sessions.
func AutomationCounters(payments []models.Payment, students []models.Student, attendance []models.AttendanceRecord, now time.Time) Counters {
	todayStr := now.Format(isoDay)
	dueSoonStr := now.AddDate(0, 0, 3).Format(isoDay)

	counters := Counters{}
	for _, payment := range payments {
		if payment.Status != models.PaymentPending {
			continue
		}
		switch {
		case payment.Date < todayStr:
			counters.OverduePayments++
		case payment.Date <= dueSoonStr:
			counters.FeesDueSoon++
		}
	}

	attendedByStudent := make(map[string]int)
	for _, record := range attendance {
		if record.Status == models.AttendancePresent || record.Status == models.AttendanceLate {
			attendedByStudent[record.StudentID]++
		}
	}

	for _, student := range students {
		if student.Status != models.StudentStatusActive {
			continue
		}
		if attendedByStudent[student.ID] >= student.TotalSessions {
			counters.CertificatesReady++
		}
		if student.ValidityEnd != "" && student.ValidityEnd < todayStr {
			counters.ExpiredValidity++
		}
	}

	return counters
}

// ExpenseCategoryTotals sums expense amounts per category, mapping unknown
// categories onto the "Other" bucket.
func ExpenseCategoryTotals(expenses []models.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, expense := range expenses {
		totals[models.NormalizeExpenseCategory(expense.Category)] += expense.Amount
	}
	return totals
}
