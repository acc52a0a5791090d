package auth_test

import (
	"testing"

	"github.com/mauv0809/scorebook/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndVerify(t *testing.T) {
	v := auth.New("letmein", "super-secret")

	token, err := v.Login("letmein")
	require.NoError(t, err)
	assert.True(t, v.Verify(token))
}

func TestLogin_WrongCode(t *testing.T) {
	v := auth.New("letmein", "super-secret")

	_, err := v.Login("guess")
	assert.ErrorIs(t, err, auth.ErrInvalidCode)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	v := auth.New("letmein", "super-secret")

	assert.False(t, v.Verify(""))
	assert.False(t, v.Verify("no-dot-here"))
	assert.False(t, v.Verify("nonce.deadbeef"))
}

func TestVerify_RejectsForeignSecret(t *testing.T) {
	issuer := auth.New("letmein", "secret-a")
	checker := auth.New("letmein", "secret-b")

	token, err := issuer.Login("letmein")
	require.NoError(t, err)
	assert.False(t, checker.Verify(token))
}

func TestVerify_SurvivesRestart(t *testing.T) {
	before := auth.New("letmein", "super-secret")
	token, err := before.Login("letmein")
	require.NoError(t, err)

	after := auth.New("letmein", "super-secret")
	assert.True(t, after.Verify(token))
}
