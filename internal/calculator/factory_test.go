package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAssignsFieldsByPosition(t *testing.T) {
	tests := []struct {
		code   string
		values []float64
		want   Training
	}{
		{
			code:   "SWM",
			values: []float64{720, 1, 80, 25, 40},
			want:   Swimming{Record: Record{Action: 720, Duration: 1, Weight: 80}, LengthPool: 25, CountPool: 40},
		},
		{
			code:   "RUN",
			values: []float64{15000, 1, 75},
			want:   Running{Record: Record{Action: 15000, Duration: 1, Weight: 75}},
		},
		{
			code:   "WLK",
			values: []float64{9000, 1, 75, 180},
			want:   SportsWalking{Record: Record{Action: 9000, Duration: 1, Weight: 75}, Height: 180},
		},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			got, err := Build(tc.code, tc.values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.code, got.Kind().Code())
		})
	}
}

func TestBuildUnknownCode(t *testing.T) {
	_, err := Build("XYZ", []float64{1, 2, 3})

	require.ErrorIs(t, err, ErrUnknownCode)
	assert.EqualError(t, err, `unrecognized workout code: "XYZ"`)
}

func TestBuildArgumentCount(t *testing.T) {
	tests := []struct {
		code   string
		values []float64
		want   int
	}{
		{"RUN", []float64{1, 2}, 3},
		{"RUN", []float64{1, 2, 3, 4}, 3},
		{"WLK", []float64{9000, 1, 75}, 4},
		{"SWM", []float64{720, 1, 80, 25}, 5},
		{"SWM", nil, 5},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			_, err := Build(tc.code, tc.values)
			require.ErrorIs(t, err, ErrArgumentCount)

			var ace *ArgumentCountError
			require.True(t, errors.As(err, &ace))
			assert.Equal(t, tc.want, ace.Want)
			assert.Equal(t, len(tc.values), ace.Got)
			assert.Equal(t, tc.code, ace.Kind.Code())
		})
	}
}

func TestBuildInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		values []float64
		field  string
	}{
		{"zero duration", "RUN", []float64{15000, 0, 75}, "duration"},
		{"negative weight", "RUN", []float64{15000, 1, -75}, "weight"},
		{"fractional action", "RUN", []float64{150.5, 1, 75}, "action"},
		{"nan action", "RUN", []float64{math.NaN(), 1, 75}, "action"},
		{"infinite duration", "RUN", []float64{15000, math.Inf(1), 75}, "duration"},
		{"zero height", "WLK", []float64{9000, 1, 75, 0}, "height"},
		{"negative pool length", "SWM", []float64{720, 1, 80, -25, 40}, "length_pool"},
		{"fractional pool count", "SWM", []float64{720, 1, 80, 25, 40.5}, "count_pool"},
		{"huge action", "RUN", []float64{1e300, 1, 75}, "action"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.code, tc.values)
			require.ErrorIs(t, err, ErrInvalidValue)

			var ive *InvalidValueError
			require.True(t, errors.As(err, &ive))
			assert.Equal(t, tc.field, ive.Field)
		})
	}
}

func TestBuildAcceptsZeroCounts(t *testing.T) {
	got, err := Build("SWM", []float64{0, 0.5, 80, 0, 0})
	require.NoError(t, err)

	assert.Zero(t, got.Distance())
	assert.Zero(t, got.MeanSpeed())
	assert.InDelta(t, 1.1*2*80, got.Calories(), tolerance)
}

func TestErrorClass(t *testing.T) {
	_, unknown := Build("XYZ", nil)
	_, count := Build("RUN", nil)
	_, value := Build("RUN", []float64{1, 0, 1})

	assert.Equal(t, "unknown_code", errorClass(unknown))
	assert.Equal(t, "argument_count", errorClass(count))
	assert.Equal(t, "invalid_value", errorClass(value))
	assert.Equal(t, "other", errorClass(errors.New("boom")))
}
