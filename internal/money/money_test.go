package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/realty/internal/money"
)

func TestMajorToMinor(t *testing.T) {
	tests := []struct {
		name  string
		major float64
		want  int64
	}{
		{name: "Whole", major: 100.00, want: 10000},
		{name: "Cents", major: 0.30, want: 30},
		{name: "HalfRoundsUp", major: 0.005, want: 1},
		{name: "NegativeHalfRoundsAway", major: -0.005, want: -1},
		{name: "Zero", major: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.MajorToMinor(tt.major))
		})
	}
}

func TestMinorToMajor(t *testing.T) {
	assert.Equal(t, 100.00, money.MinorToMajor(10000))
	assert.Equal(t, 0.30, money.MinorToMajor(30))
}

func TestRoundTripAvoidsFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style errors must not survive the integer representation.
	a := money.MajorToMinor(0.1)
	b := money.MajorToMinor(0.2)
	assert.Equal(t, int64(30), a+b)
	assert.Equal(t, 0.30, money.MinorToMajor(a+b))
}

func TestFormatUnknownCurrency(t *testing.T) {
	assert.Equal(t, "105.00 ZZZ", money.Format(10500, "ZZZ"))
}

func TestFormatKnownCurrency(t *testing.T) {
	got := money.Format(10000, "USD")
	assert.Contains(t, got, "100.00")
}
