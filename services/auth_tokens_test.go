package services

import (
	"testing"
	"time"

	"github.com/interpark/realty-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	db := newTestDB(t)
	accounts := &AccountsService{DB: db}
	tokens := &AuthTokensService{DB: db, SigningPepper: "test-pepper"}

	user, err := accounts.Register(testRegisterInfo(models.RoleClient))
	require.NoError(t, err)

	token, err := tokens.CreateToken(user, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	verified, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, user.ID, verified.ID)
}

func TestAuthTokenRejectsExpired(t *testing.T) {
	db := newTestDB(t)
	accounts := &AccountsService{DB: db}
	tokens := &AuthTokensService{DB: db, SigningPepper: "test-pepper"}

	user, err := accounts.Register(testRegisterInfo(models.RoleClient))
	require.NoError(t, err)

	token, err := tokens.CreateToken(user, time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)

	verified, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Nil(t, verified)
}

func TestAuthTokenRejectsWrongPepper(t *testing.T) {
	db := newTestDB(t)
	accounts := &AccountsService{DB: db}
	user, err := accounts.Register(testRegisterInfo(models.RoleClient))
	require.NoError(t, err)

	signer := &AuthTokensService{DB: db, SigningPepper: "pepper-a"}
	token, err := signer.CreateToken(user, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	verifier := &AuthTokensService{DB: db, SigningPepper: "pepper-b"}
	verified, err := verifier.VerifyToken(token)
	require.NoError(t, err)
	assert.Nil(t, verified)
}

func TestAuthTokenUnknownUser(t *testing.T) {
	db := newTestDB(t)
	tokens := &AuthTokensService{DB: db, SigningPepper: "test-pepper"}

	ghost := &models.User{ID: "deleted-user"}
	token, err := tokens.CreateToken(ghost, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	verified, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Nil(t, verified)
}
