package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckChevvaiDosham(t *testing.T) {
	cases := []struct {
		name    string
		chart   Chart
		rasiID  int
		want    bool
		details int
	}{
		{"no chart", nil, 1, false, 0},
		{"no mars", Chart{1: {Lagnam, Moon}}, 1, false, 0},
		{"distance seven from lagnam only", Chart{1: {Lagnam}, 8: {Mars}, 7: {Moon}}, 7, true, 1},
		{"distance two from both", Chart{1: {Lagnam, Moon}, 3: {Mars}}, 1, true, 2},
		{"mars with lagnam counts as twelfth", Chart{1: {Lagnam, Mars}, 3: {Moon}}, 3, true, 1},
		{"distance three is clear", Chart{1: {Lagnam, Moon}, 4: {Mars}}, 1, false, 0},
		{"rasi stands in for a missing moon", Chart{1: {Lagnam}, 5: {Mars}}, 5, true, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckChevvaiDosham(tc.chart, tc.rasiID)
			assert.Equal(t, tc.want, got.HasDosham)
			assert.Len(t, got.Details, tc.details)
			assert.NotNil(t, got.Details)
		})
	}
}

func TestCompareDosham(t *testing.T) {
	yes := DoshamResult{HasDosham: true, Details: []string{"Mars in house 7 from Lagnam"}}
	no := DoshamResult{Details: []string{}}

	assert.Equal(t, StatusMatch, CompareDosham(yes, yes).Status)
	assert.Equal(t, StatusMatch, CompareDosham(no, no).Status)
	assert.Equal(t, StatusNoMatch, CompareDosham(yes, no).Status)
	assert.Equal(t, StatusNoMatch, CompareDosham(no, yes).Status)
}

func TestHouseDistance(t *testing.T) {
	assert.Equal(t, 12, houseDistance(3, 3))
	assert.Equal(t, 1, houseDistance(4, 3))
	assert.Equal(t, 11, houseDistance(2, 3))
}
