package services

import "time"

const (
	LutealPhaseDays     = 14
	possibleStartWindow = 2
)

type Forecast struct {
	NextStartDate   time.Time `json:"next_start_date"`
	NextEndDate     time.Time `json:"next_end_date"`
	OvulationDate   time.Time `json:"ovulation_date"`
	PossibleEndDate time.Time `json:"possible_end_date"`
}

func CalculateForecast(lastStartDate time.Time, averageCycleLength int, averagePeriodLength int) Forecast {
	nextStart := calendarDay(lastStartDate).AddDate(0, 0, averageCycleLength)
	return Forecast{
		NextStartDate:   nextStart,
		NextEndDate:     nextStart.AddDate(0, 0, averagePeriodLength),
		OvulationDate:   nextStart.AddDate(0, 0, -LutealPhaseDays),
		PossibleEndDate: nextStart.AddDate(0, 0, possibleStartWindow),
	}
}
