package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IST is the fixed UTC+05:30 zone every birth time is read in.
var IST = time.FixedZone("IST", 5*3600+30*60)

// BirthDetails is the raw user input for a chart.
type BirthDetails struct {
	Name       string `json:"name,omitempty"`
	BirthDate  string `json:"birth_date"`  // YYYY-MM-DD
	BirthTime  string `json:"birth_time"`  // HH:MM
	Meridian   string `json:"meridian"`    // AM, PM, or empty for 24-hour times
	BirthPlace string `json:"birth_place"` // city name
}

// BirthMoment is a parsed birth time.
type BirthMoment struct {
	Time       time.Time // civil time in IST
	LocalHours float64   // decimal hours since local midnight
}

// ParseBirthDetails validates the input and resolves the civil birth time.
// 12 AM is midnight and 12 PM is noon; with no meridian the hour is read as
// 24-hour.
func ParseBirthDetails(d BirthDetails) (BirthMoment, error) {
	if strings.TrimSpace(d.BirthPlace) == "" {
		return BirthMoment{}, ErrMissingBirthPlace
	}

	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(d.BirthDate), IST)
	if err != nil {
		return BirthMoment{}, fmt.Errorf("%w: %q", ErrInvalidBirthDate, d.BirthDate)
	}

	hour, minute, err := parseHHMM(d.BirthTime)
	if err != nil {
		return BirthMoment{}, err
	}

	switch strings.ToUpper(strings.TrimSpace(d.Meridian)) {
	case "AM":
		if hour < 1 || hour > 12 {
			return BirthMoment{}, fmt.Errorf("%w: %q with AM", ErrInvalidBirthTime, d.BirthTime)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return BirthMoment{}, fmt.Errorf("%w: %q with PM", ErrInvalidBirthTime, d.BirthTime)
		}
		if hour != 12 {
			hour += 12
		}
	case "":
	default:
		return BirthMoment{}, fmt.Errorf("%w: %q", ErrInvalidMeridian, d.Meridian)
	}

	t := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, IST)
	return BirthMoment{
		Time:       t,
		LocalHours: float64(hour) + float64(minute)/60,
	}, nil
}

func parseHHMM(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidBirthTime, s)
	}
	hour, errH := strconv.Atoi(hh)
	minute, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidBirthTime, s)
	}
	return hour, minute, nil
}
