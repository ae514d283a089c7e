package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    SwapStatus
		to      SwapStatus
		allowed bool
	}{
		{"pending to accepted", StatusPending, StatusAccepted, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"accepted to completed", StatusAccepted, StatusCompleted, true},
		{"accepted to rejected", StatusAccepted, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusAccepted, false},
		{"completed is terminal", StatusCompleted, StatusPending, false},
		{"no self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSwapStatus_Valid(t *testing.T) {
	for _, status := range []SwapStatus{StatusPending, StatusAccepted, StatusRejected, StatusCompleted} {
		assert.True(t, status.Valid())
	}
	assert.False(t, SwapStatus("archived").Valid())
	assert.False(t, SwapStatus("").Valid())
}

func TestSwapStatus_Deletable(t *testing.T) {
	assert.True(t, StatusPending.Deletable())
	assert.True(t, StatusRejected.Deletable())
	assert.False(t, StatusAccepted.Deletable())
	assert.False(t, StatusCompleted.Deletable())
}

func TestUser_OffersSkill(t *testing.T) {
	user := User{SkillsOffered: []string{"React", "Go"}}

	assert.True(t, user.OffersSkill("React"))
	assert.False(t, user.OffersSkill("react"))
	assert.False(t, user.OffersSkill("Python"))
}
