package transportation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "logistics-backoffice/pkg/errors"
)

func TestRequest_ChangeStatus(t *testing.T) {
	r := &Request{Status: StatusPending}

	require.NoError(t, r.ChangeStatus(StatusAccepted))
	require.NoError(t, r.ChangeStatus(StatusAccepted))

	err := r.ChangeStatus(StatusPending)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeInvalidTransition, appErrors.CodeOf(err))
	assert.Equal(t, StatusAccepted, r.Status)

	require.NoError(t, r.ChangeStatus(StatusCompleted))
	assert.Empty(t, GetAllowedTransitions(StatusCompleted))
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []Status{StatusRejected, StatusCompleted, StatusCancelled} {
		for _, next := range Statuses {
			if next == s {
				continue
			}
			assert.Error(t, ValidateStatusTransition(s, next), "%s -> %s", s, next)
		}
	}
}
