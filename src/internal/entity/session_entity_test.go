package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatusTransitions(t *testing.T) {
	all := []SessionStatus{SessionPending, SessionAccepted, SessionRejected, SessionCompleted}
	allowed := map[[2]SessionStatus]bool{
		{SessionPending, SessionAccepted}:   true,
		{SessionPending, SessionRejected}:   true,
		{SessionAccepted, SessionCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]SessionStatus{from, to}]
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestSessionStatusTerminal(t *testing.T) {
	assert.False(t, SessionPending.Terminal())
	assert.False(t, SessionAccepted.Terminal())
	assert.True(t, SessionRejected.Terminal())
	assert.True(t, SessionCompleted.Terminal())
}

func TestSessionStatusValid(t *testing.T) {
	assert.True(t, SessionStatus("pending").Valid())
	assert.False(t, SessionStatus("in-progress").Valid())
	assert.False(t, SessionStatus("").Valid())
}

func TestSessionParticipant(t *testing.T) {
	s := SessionRequest{StudentID: "s", TutorID: "t"}
	assert.True(t, s.Participant("s"))
	assert.True(t, s.Participant("t"))
	assert.False(t, s.Participant("x"))
}
