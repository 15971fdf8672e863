package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("signing-key", 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("signing-key", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.OrganizerID)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseToken_RejectsBadInput(t *testing.T) {
	token, err := GenerateToken("signing-key", 42)
	require.NoError(t, err)

	_, err = ParseToken("other-key", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("signing-key", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
