package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthDetails(t *testing.T) {
	cases := []struct {
		name      string
		time      string
		meridian  string
		wantHours float64
	}{
		{"12 AM is midnight", "12:30", "AM", 0.5},
		{"12 PM is noon", "12:15", "PM", 12.25},
		{"PM adds twelve", "07:45", "PM", 19.75},
		{"AM keeps the hour", "06:00", "am", 6},
		{"24-hour without meridian", "18:20", "", 18 + 20.0/60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseBirthDetails(BirthDetails{
				BirthDate:  "1990-04-15",
				BirthTime:  tc.time,
				Meridian:   tc.meridian,
				BirthPlace: "Chennai",
			})
			require.NoError(t, err)
			assert.InDelta(t, tc.wantHours, m.LocalHours, 1e-9)
			assert.Equal(t, IST, m.Time.Location())
			assert.Equal(t, time.April, m.Time.Month())
			assert.Equal(t, 15, m.Time.Day())
		})
	}
}

func TestParseBirthDetails_Errors(t *testing.T) {
	valid := BirthDetails{BirthDate: "1990-04-15", BirthTime: "07:45", Meridian: "PM", BirthPlace: "Madurai"}

	cases := []struct {
		name   string
		mutate func(*BirthDetails)
		want   error
	}{
		{"missing place", func(d *BirthDetails) { d.BirthPlace = "  " }, ErrMissingBirthPlace},
		{"bad date", func(d *BirthDetails) { d.BirthDate = "15-04-1990" }, ErrInvalidBirthDate},
		{"impossible date", func(d *BirthDetails) { d.BirthDate = "1990-02-30" }, ErrInvalidBirthDate},
		{"bad time", func(d *BirthDetails) { d.BirthTime = "7.45" }, ErrInvalidBirthTime},
		{"hour out of range", func(d *BirthDetails) { d.BirthTime = "25:00"; d.Meridian = "" }, ErrInvalidBirthTime},
		{"13 PM", func(d *BirthDetails) { d.BirthTime = "13:00" }, ErrInvalidBirthTime},
		{"0 AM", func(d *BirthDetails) { d.BirthTime = "00:10"; d.Meridian = "AM" }, ErrInvalidBirthTime},
		{"bad meridian", func(d *BirthDetails) { d.Meridian = "XM" }, ErrInvalidMeridian},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)
			_, err := ParseBirthDetails(d)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
