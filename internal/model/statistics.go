package model

type Statistics struct {
	TodayBooks       int
	TodayPages       int
	MonthBooks       int
	MonthPages       int
	YearBooks        int
	YearPages        int
	BiggestBookTitle string
	BiggestBookPages int
}
