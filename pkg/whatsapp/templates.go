package whatsapp

import (
	"fmt"
	"strings"
	"time"
)

const studioName = "Art Neelam Academy"

// FeeReminder renders the payment reminder sent to a parent. An empty dueDate
// falls back to "soon".
func FeeReminder(studentName string, amount float64, dueDate string) string {
	due := " soon"
	if parsed, err := time.Parse("2006-01-02", dueDate); err == nil {
		due = fmt.Sprintf(" on %s", parsed.Format("2 January 2006"))
	}

	return fmt.Sprintf(
		"Dear Parent,\n\nThis is a reminder that the fee of ₹%s for *%s* is due%s.\n\nKindly complete the payment to continue uninterrupted classes at %s.\n\n– %s",
		FormatAmount(amount), studentName, due, studioName, studioName,
	)
}

// WelcomeStudent greets a newly enrolled student's family.
func WelcomeStudent(studentName, course, batch string) string {
	return fmt.Sprintf(
		"Welcome to *%s*! 🎨\n\nDear Parent,\n\nWe're delighted to have *%s* join our %s course (%s batch).\n\nLooking forward to a creative journey together! ✨",
		studioName, studentName, course, BatchShortName(batch),
	)
}

// BirthdayWish renders the birthday greeting.
func BirthdayWish(studentName string) string {
	return fmt.Sprintf(
		"🎂 *Happy Birthday, %s!* 🎉\n\nWishing you a wonderful day filled with colors and creativity!\n\nFrom your %s family 🎨❤️",
		studentName, studioName,
	)
}

// AttendanceAlert notifies a parent of the day's mark.
func AttendanceAlert(studentName, date, status string) string {
	statusLine := "✅ Present"
	switch status {
	case "absent":
		statusLine = "❌ Absent"
	case "late":
		statusLine = "⏰ Late"
	}

	return fmt.Sprintf(
		"Attendance Update — *%s*\n\nStudent: *%s*\nDate: %s\nStatus: %s\n\nPlease contact us for any queries.",
		studioName, studentName, date, statusLine,
	)
}

// FollowUp nudges a lead toward a demo class.
func FollowUp(leadName, course string) string {
	return fmt.Sprintf(
		"Hi *%s*! 👋\n\nThank you for your interest in our *%s* course at %s.\n\nWould you like to schedule a free demo class? We'd love to show you what we do! 🎨\n\nReply to this message or call us anytime.",
		leadName, course, studioName,
	)
}

// NoticeBroadcast renders a board notice for messaging.
func NoticeBroadcast(title, body string) string {
	return fmt.Sprintf("📢 *Notice — %s*\n\n*%s*\n\n%s\n\nThank you! 🎨", studioName, title, body)
}

// CustomPrefix starts a free-text message about a student.
func CustomPrefix(studentName string) string {
	return fmt.Sprintf("Hi! Regarding *%s* at %s —\n\n", studentName, studioName)
}

// BatchShortName trims the time-slot suffix from a batch label.
func BatchShortName(batch string) string {
	if idx := strings.Index(batch, " ("); idx >= 0 {
		return batch[:idx]
	}
	return batch
}

// FormatAmount renders an amount with Indian digit grouping (12,34,567).
func FormatAmount(amount float64) string {
	whole := fmt.Sprintf("%.0f", amount)
	negative := strings.HasPrefix(whole, "-")
	if negative {
		whole = whole[1:]
	}

	if len(whole) > 3 {
		head := whole[:len(whole)-3]
		tail := whole[len(whole)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		whole = strings.Join(groups, ",") + "," + tail
	}

	if negative {
		return "-" + whole
	}
	return whole
}
