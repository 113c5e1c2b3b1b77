package types

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: `"2024-03-15"`, want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: `"2024-03-15T10:30:00Z"`, want: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{name: "garbage", input: `"15.03.2024"`, wantErr: true},
		{name: "number", input: `20240315`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time))
		})
	}
}

func TestDate_NullLeavesPointerNil(t *testing.T) {
	var payload struct {
		DueDate *Date `json:"dueDate"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null}`), &payload))
	assert.Nil(t, payload.DueDate)
	assert.Nil(t, payload.DueDate.TimePtr())
}

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: `42`, want: 42},
		{input: `"42"`, want: 42},
		{input: `"150"`, want: 150},
		{input: `12.7`, want: 12},
		{input: `-3.9`, want: -3},
		{input: `1e30`, want: math.MaxInt},
		{input: `"1e30"`, want: math.MaxInt},
		{input: `9999999999999999999`, want: math.MaxInt},
		{input: `-1e30`, want: math.MinInt},
		{input: `"1e400"`, want: math.MaxInt},
		{input: `"abc"`, wantErr: true},
		{input: `"NaN"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var n FlexInt
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int(n))
		})
	}
}
