package models

import "time"

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday of the ISO week containing t, at midnight UTC.
func MondayOf(t time.Time) time.Time {
	day := DateOnly(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// WeekWindow returns the Monday and Sunday of the ISO week containing t.
func WeekWindow(t time.Time) (start, end time.Time) {
	start = MondayOf(t)
	return start, start.AddDate(0, 0, 6)
}

// WithinDays reports whether t falls on a calendar day in [from, to].
func WithinDays(t, from, to time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(from)) && !d.After(DateOnly(to))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// EndOfDay returns the last instant of the calendar day of t.
func EndOfDay(t time.Time) time.Time {
	return DateOnly(t).Add(24*time.Hour - time.Nanosecond)
}
