package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	signed, claim, err := Issue("secret", "skillswitch", time.Hour, Metadata{UserID: "u-1", FullName: "Asha"})
	require.NoError(t, err)
	require.NotEmpty(t, claim.ID)

	parsed, err := Parse("secret", signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.Metadata.UserID)
	assert.Equal(t, claim.ID, parsed.ID)
}

func TestParseRejects(t *testing.T) {
	signed, _, err := Issue("secret", "skillswitch", time.Hour, Metadata{UserID: "u-1"})
	require.NoError(t, err)
	expired, _, err := Issue("secret", "skillswitch", -time.Minute, Metadata{UserID: "u-1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		raw    string
	}{
		{name: "wrong secret", secret: "other", raw: signed},
		{name: "expired", secret: "secret", raw: expired},
		{name: "garbage", secret: "secret", raw: "not.a.token"},
		{name: "empty", secret: "secret", raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.secret, tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
