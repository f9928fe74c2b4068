package engine

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses "YYYY-MM-DD" ~10x faster than time.Parse by avoiding
// layout parsing. Returns zero time and false on invalid input.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// monthsBetween counts whole calendar months from start to end, negative
// when end precedes start. A month only counts once its day-of-month is
// reached, so mid-month dates do not over-count.
func monthsBetween(start, end time.Time) int {
	m := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		m--
	}
	return m
}

// yearOpen returns the valuation date of projection year n: the offer-start
// anniversary at which the year opens (n=1 is the start date itself).
func yearOpen(offerStart time.Time, n int) time.Time {
	return offerStart.AddDate(n-1, 0, 0)
}

// yearIndexOf maps a date on or after the offer start to the 1-based
// projection year containing it.
func yearIndexOf(offerStart, date time.Time) int {
	return monthsBetween(offerStart, date)/12 + 1
}
