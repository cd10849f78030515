package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9", "09:00"},
		{"14", "14:00"},
		{"09:00", "09:00"},
		{"21:30", "21:30"},
		{"  20:15  ", "20:15"},
		{" 7 ", "07:00"},
		{"evening", "evening"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTime(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeTimeIdempotent(t *testing.T) {
	for _, in := range []string{"9", "09:00", "21:30", "evening"} {
		once := NormalizeTime(in)
		assert.Equal(t, once, NormalizeTime(once))
	}
}

func TestCompareTimes(t *testing.T) {
	assert.Negative(t, CompareTimes("09:00", "09:30"))
	assert.Negative(t, CompareTimes("9", "09:30"))
	assert.Positive(t, CompareTimes("21:00", "20:15"))
	assert.Zero(t, CompareTimes("12:00", "12:00"))
	assert.Negative(t, CompareTimes("09:59", "10:00"))
}
