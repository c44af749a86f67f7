package hijri

import "time"

// GridCells is the fixed 6-week cell count of both calendar views.
const GridCells = 42

// GridDay is one cell of a month grid. IsCurrentMonth marks cells belonging
// to the displayed month; adjacent-month filler renders dimmed.
type GridDay struct {
	Date           time.Time
	IsCurrentMonth bool
}

// BuildMonthGrid produces the 42-cell grid for the month containing ref in
// the given view. Leading cells are the tail of the previous month, aligned
// so the month's first day lands on its weekday; trailing cells pad out the
// six weeks.
func BuildMonthGrid(ref time.Time, view ViewMode, cfg Config) []GridDay {
	days := make([]GridDay, 0, GridCells)

	if view == ViewGregorian {
		y, m, _ := ref.Date()
		first := time.Date(y, m, 1, 12, 0, 0, 0, ref.Location())
		firstWeekday := int(first.Weekday())
		totalDays := time.Date(y, m+1, 0, 12, 0, 0, 0, ref.Location()).Day()
		for i := firstWeekday; i > 0; i-- {
			days = append(days, GridDay{Date: first.AddDate(0, 0, -i)})
		}
		for i := 0; i < totalDays; i++ {
			days = append(days, GridDay{Date: first.AddDate(0, 0, i), IsCurrentMonth: true})
		}
	} else {
		start := MonthStart(ref, cfg)
		firstWeekday := int(start.Weekday())
		length := MonthLength(start, cfg)
		for i := firstWeekday; i > 0; i-- {
			days = append(days, GridDay{Date: start.AddDate(0, 0, -i)})
		}
		for i := 0; i < length; i++ {
			days = append(days, GridDay{Date: start.AddDate(0, 0, i), IsCurrentMonth: true})
		}
	}

	last := days[len(days)-1].Date
	for i := 1; len(days) < GridCells; i++ {
		days = append(days, GridDay{Date: last.AddDate(0, 0, i)})
	}
	return days[:GridCells]
}
