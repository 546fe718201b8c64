package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignerRequiresKey(t *testing.T) {
	_, err := NewSigner("", time.Hour)
	assert.Error(t, err, "expected error for empty secret key")
}

func TestIssueAndVerify(t *testing.T) {
	signer, err := NewSigner("test-secret-key", time.Hour)
	require.NoError(t, err)

	token, err := signer.Issue(7, "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."), "expected a compact JWS")

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
}

func TestVerifyWrongKey(t *testing.T) {
	signer, err := NewSigner("key-one", time.Hour)
	require.NoError(t, err)
	other, err := NewSigner("key-two", time.Hour)
	require.NoError(t, err)

	token, err := signer.Issue(1, "admin")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err, "token signed with another key should not verify")
}

func TestVerifyExpired(t *testing.T) {
	signer, err := NewSigner("test-secret-key", -time.Minute)
	require.NoError(t, err)

	token, err := signer.Issue(1, "admin")
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.Error(t, err, "expired token should not verify")
}

func TestVerifyGarbage(t *testing.T) {
	signer, err := NewSigner("test-secret-key", time.Hour)
	require.NoError(t, err)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := signer.Verify(tok)
		assert.Error(t, err, "Verify(%q) should fail", tok)
	}
}
