package domain

import "time"

// Overlaps reports whether [s1, e1) and [s2, e2) share at least one
// night. Intervals are half-open: a checkout on day N does not conflict
// with a check-in on day N.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Nights returns the number of whole days between check-in and
// checkout. Zero or negative means the range is invalid for booking.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}
