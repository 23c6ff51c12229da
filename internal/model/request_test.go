package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{"pending to in_progress", StatusPending, StatusInProgress, true},
		{"pending to canceled", StatusPending, StatusCanceled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"in_progress back to pending", StatusInProgress, StatusPending, true},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"in_progress to canceled", StatusInProgress, StatusCanceled, true},
		{"same status is a no-op", StatusPending, StatusPending, false},
		{"unknown target", StatusPending, RequestStatus("open"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestTerminalStatusesRejectEverything(t *testing.T) {
	all := []RequestStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCanceled}

	for _, from := range []RequestStatus{StatusCompleted, StatusCanceled} {
		assert.True(t, from.Terminal())
		for _, to := range all {
			assert.False(t, from.CanTransition(to), "%s -> %s must be rejected", from, to)
		}
	}
}

func TestRequestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCanceled.Valid())
	assert.False(t, RequestStatus("open").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestClaimed(t *testing.T) {
	req := DonationRequest{DonorEmail: DonorPlaceholder}
	assert.False(t, req.Claimed())

	req.DonorEmail = "donor@example.com"
	assert.True(t, req.Claimed())
}
