package packets

type GridCell struct {
	Date           string `json:"date"`
	GregorianDay   int    `json:"gregorianDay"`
	HijriDay       string `json:"hijriDay"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsToday        bool   `json:"isToday"`
	IsJummah       bool   `json:"isJummah"`
}

type GridResponse struct {
	View          string     `json:"view"`
	ReferenceDate string     `json:"referenceDate"`
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle"`
	Cells         []GridCell `json:"cells"`
}

type AdvanceResponse struct {
	ReferenceDate string `json:"referenceDate"`
}

type TodayResponse struct {
	Gregorian string `json:"gregorian"`
	Hijri     string `json:"hijri"`
}
