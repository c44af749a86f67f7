package hijri

import "time"

// Julian Day Number of 1970-01-01 (Gregorian).
const unixEpochJDN = 2440588

// ToJDN returns the Julian Day Number of t's civil date.
func ToJDN(t time.Time) int {
	y, m, d := t.Date()
	return daysFromCivil(y, int(m), d) + unixEpochJDN
}

// FromJDN returns the civil date for a Julian Day Number, at noon in loc.
// Noon keeps day arithmetic clear of DST transitions.
func FromJDN(jdn int, loc *time.Location) time.Time {
	y, m, d := civilFromDays(jdn - unixEpochJDN)
	return time.Date(y, time.Month(m), d, 12, 0, 0, 0, loc)
}

// daysFromCivil counts days from 1970-01-01 to the given proleptic Gregorian
// date. Hinnant's algorithm, exact for all representable dates.
func daysFromCivil(y, m, d int) int {
	if m <= 2 {
		y--
	}
	var era int
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400
	var mp int
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int) (y, m, d int) {
	z += 719468
	var era int
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return
}
