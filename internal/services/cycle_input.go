package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCycleDateRequired = errors.New("start and end dates are required")
	ErrInvalidCycleDate  = errors.New("invalid date format")
	ErrInvalidCycleRange = errors.New("end date must be after start date")
	ErrInvalidMeasure    = errors.New("weight and height must be positive")
)

type CycleInput struct {
	StartDate  string
	EndDate    string
	MoodSwings string
	Weight     *float64
	Height     *float64
}

type parsedCycleInput struct {
	start time.Time
	end   time.Time
	// Length counts both the start and the end day.
	length int
}

func parseCycleInput(input CycleInput) (parsedCycleInput, error) {
	rawStart := strings.TrimSpace(input.StartDate)
	rawEnd := strings.TrimSpace(input.EndDate)
	if rawStart == "" || rawEnd == "" {
		return parsedCycleInput{}, ErrCycleDateRequired
	}

	start, err := time.ParseInLocation("2006-01-02", rawStart, time.UTC)
	if err != nil {
		return parsedCycleInput{}, ErrInvalidCycleDate
	}
	end, err := time.ParseInLocation("2006-01-02", rawEnd, time.UTC)
	if err != nil {
		return parsedCycleInput{}, ErrInvalidCycleDate
	}

	length := daysBetween(start, end) + 1
	if length <= 0 {
		return parsedCycleInput{}, ErrInvalidCycleRange
	}

	if (input.Weight != nil && *input.Weight <= 0) || (input.Height != nil && *input.Height <= 0) {
		return parsedCycleInput{}, ErrInvalidMeasure
	}

	return parsedCycleInput{start: start, end: end, length: length}, nil
}
