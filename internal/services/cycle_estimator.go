package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/herhealth/internal/models"
)

const (
	// RecentCycleWindow is how many of the latest cycles feed an estimate.
	RecentCycleWindow = 10

	minPlausibleCycleGap = 15
	maxPlausibleCycleGap = 45
)

var (
	ErrInsufficientHistory = errors.New("insufficient cycle history")
	ErrMalformedHistory    = errors.New("malformed cycle history")
)

type CycleEstimate struct {
	AverageCycleLength  int
	AveragePeriodLength int
	SampleCount         int
	AcceptedGaps        []int
	UsedDefault         bool
}

// EstimateCycleLengths averages the start-to-start gaps and the period
// lengths of cycles ordered by start date, most recent first.
//
// Gaps outside (15, 45) days are dropped; when none survive the cycle length
// falls back to models.DefaultCycleLength. Period lengths are averaged over
// every sampled record without filtering.
func EstimateCycleLengths(cycles []models.Cycle) (CycleEstimate, error) {
	if len(cycles) < 2 {
		return CycleEstimate{}, ErrInsufficientHistory
	}

	gaps := make([]int, 0, len(cycles)-1)
	for index := 0; index < len(cycles)-1; index++ {
		current := cycles[index].StartDate
		previous := cycles[index+1].StartDate
		if current.IsZero() || previous.IsZero() {
			continue
		}

		gap := daysBetween(previous, current)
		if gap > minPlausibleCycleGap && gap < maxPlausibleCycleGap {
			gaps = append(gaps, gap)
		}
	}

	estimate := CycleEstimate{
		SampleCount:  len(cycles),
		AcceptedGaps: gaps,
	}
	if len(gaps) == 0 {
		estimate.AverageCycleLength = models.DefaultCycleLength
		estimate.UsedDefault = true
	} else {
		estimate.AverageCycleLength = sumInts(gaps) / len(gaps)
	}

	periodTotal := 0
	for _, cycle := range cycles {
		periodTotal += cycle.Length
	}
	estimate.AveragePeriodLength = periodTotal / len(cycles)

	return estimate, nil
}

func sumInts(values []int) int {
	total := 0
	for _, value := range values {
		total += value
	}
	return total
}

// daysBetween counts calendar days from start to end, ignoring time of day
// and the locations the two values were created in.
func daysBetween(start time.Time, end time.Time) int {
	return int(calendarDay(end).Sub(calendarDay(start)).Hours() / 24)
}

func calendarDay(value time.Time) time.Time {
	y, m, d := value.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
