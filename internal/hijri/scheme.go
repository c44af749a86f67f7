package hijri

import (
	"errors"

	"github.com/sakinah-tech/minbar/internal/model"
)

// Date is a Hijri calendar position. Month is 1-based (1 = Muharram).
type Date struct {
	Year  int
	Month int
	Day   int
}

// MonthNames is the fixed Hijri month-name list, indexed by Month-1.
var MonthNames = [12]string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Shabaan",
	"Ramadan", "Shawwal", "Dhu al-Qidah", "Dhu al-Hijjah",
}

// ErrBeforeEpoch is returned for civil dates preceding 1 Muharram AH 1.
var ErrBeforeEpoch = errors.New("hijri: date precedes calendar epoch")

// Scheme converts between Julian Day Numbers and Hijri dates. Implementations
// are pure; the day-offset correction is applied by callers before conversion,
// never inside a scheme.
type Scheme interface {
	ToJDN(year, month, day int) int
	FromJDN(jdn int) (Date, error)
}

// tabularScheme is a 30-year-cycle arithmetic Hijri calendar. Odd months have
// 30 days, even months 29, and Dhu al-Hijjah gains a day in leap years. Each
// 30-year cycle has 11 leap years and spans exactly 10631 days.
type tabularScheme struct {
	epoch int      // JDN of 1 Muharram AH 1
	leap  [31]bool // leap years of the 30-year cycle, indexed 1..30
}

const cycleDays = 10631

// Civil is the tabular (Kuwaiti) scheme with the Friday epoch of 16 July
// 622 CE (Julian), matching the "islamic-civil" calendar.
var Civil Scheme = &tabularScheme{
	epoch: 1948440,
	leap:  leapSet(2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29),
}

// UmmAlQura approximates the Umm al-Qura calendar arithmetically: the
// astronomical Thursday epoch one day earlier, with the alternate
// intercalation pattern. Exact sighting announcements are absorbed by the
// user's day-offset correction.
var UmmAlQura Scheme = &tabularScheme{
	epoch: 1948439,
	leap:  leapSet(2, 5, 8, 10, 13, 16, 19, 21, 24, 27, 29),
}

// SchemeFor maps a stored calendar-type value to its Scheme. Unknown values
// fall back to the civil scheme.
func SchemeFor(calendarType string) Scheme {
	if calendarType == model.CalendarUmmAlQura {
		return UmmAlQura
	}
	return Civil
}

func leapSet(years ...int) [31]bool {
	var s [31]bool
	for _, y := range years {
		s[y] = true
	}
	return s
}

func (s *tabularScheme) isLeap(year int) bool {
	r := year % 30
	if r == 0 {
		r = 30
	}
	if r < 0 {
		r += 30
	}
	return s.leap[r]
}

func (s *tabularScheme) yearLen(year int) int {
	if s.isLeap(year) {
		return 355
	}
	return 354
}

func (s *tabularScheme) monthLen(year, month int) int {
	if month%2 == 1 {
		return 30
	}
	if month == 12 && s.isLeap(year) {
		return 30
	}
	return 29
}

func (s *tabularScheme) daysBeforeYear(year int) int {
	n := year - 1
	cycles := n / 30
	rem := n % 30
	days := cycles * cycleDays
	// the leap pattern repeats per cycle, so cycle-relative years suffice
	for i := 1; i <= rem; i++ {
		days += s.yearLen(i)
	}
	return days
}

func (s *tabularScheme) ToJDN(year, month, day int) int {
	jdn := s.epoch + s.daysBeforeYear(year)
	for m := 1; m < month; m++ {
		jdn += s.monthLen(year, m)
	}
	return jdn + day - 1
}

func (s *tabularScheme) FromJDN(jdn int) (Date, error) {
	days := jdn - s.epoch
	if days < 0 {
		return Date{}, ErrBeforeEpoch
	}

	// closed-form estimate, then settle on the exact year
	year := (30*days + 10646) / cycleDays
	if year < 1 {
		year = 1
	}
	for s.ToJDN(year, 1, 1) > jdn {
		year--
	}
	for s.ToJDN(year+1, 1, 1) <= jdn {
		year++
	}

	rem := jdn - s.ToJDN(year, 1, 1)
	month := 1
	for rem >= s.monthLen(year, month) {
		rem -= s.monthLen(year, month)
		month++
	}
	return Date{Year: year, Month: month, Day: rem + 1}, nil
}
