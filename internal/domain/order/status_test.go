package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "logistics-backoffice/pkg/errors"
)

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusPreparing, true},
		{StatusPreparing, StatusWaiting, true},
		{StatusWaiting, StatusInTransit, true},
		{StatusActive, StatusCompleted, true},
		{StatusInTransit, StatusCompleted, true},
		{StatusInTransit, StatusActive, true},
		{StatusPending, StatusCompleted, false},
		{StatusActive, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusActive, false},
		{Status("lost"), StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := ValidateStatusTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, appErrors.CodeInvalidTransition, appErrors.CodeOf(err))
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("archived").IsValid())
	assert.True(t, StatusActive.IsActive())
	assert.False(t, StatusPending.IsActive())
}

func TestOrder_ChangeStatusAppendsTimeline(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	o := &Order{Status: StatusPending, Details: Details{Timeline: []TimelineEntry{{Status: StatusPending, Date: at}}}}

	require.NoError(t, o.ChangeStatus(StatusActive, at.Add(time.Hour), "loaded"))
	assert.Equal(t, StatusActive, o.Status)
	require.Len(t, o.Details.Timeline, 2)
	assert.Equal(t, TimelineEntry{Status: StatusActive, Date: at.Add(time.Hour), Note: "loaded"}, o.Details.Timeline[1])

	// Same status is a no-op
	require.NoError(t, o.ChangeStatus(StatusActive, at.Add(2*time.Hour), ""))
	assert.Len(t, o.Details.Timeline, 2)

	err := o.ChangeStatus(StatusPending, at, "")
	require.Error(t, err)
	assert.Equal(t, StatusActive, o.Status)
	assert.Len(t, o.Details.Timeline, 2)
}
