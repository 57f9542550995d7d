package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
)

func TestAuthService_SignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewCredentialRepository(db))

	ident, err := svc.Signup(testContext(), SignupInput{Email: " New@Example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, ident.ID)
	assert.Equal(t, "new@example.com", ident.Email)

	var cred models.Credential
	require.NoError(t, db.First(&cred, "identity_id = ?", ident.ID).Error)
	assert.NotEqual(t, "supersecret", cred.PasswordHash)

	loggedIn, err := svc.Login(testContext(), LoginInput{Email: "NEW@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, ident.ID, loggedIn.ID)

	// credentials are identities only; no tenant user exists yet
	assert.Zero(t, countRows(t, db, &models.User{}))
}

func TestAuthService_Signup_Errors(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewCredentialRepository(db))

	_, err := svc.Signup(testContext(), SignupInput{Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Signup(testContext(), SignupInput{Email: "nope", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Signup(testContext(), SignupInput{Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)
	_, err = svc.Signup(testContext(), SignupInput{Email: "A@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewCredentialRepository(db))

	_, err := svc.Signup(testContext(), SignupInput{Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(testContext(), LoginInput{Email: "a@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(testContext(), LoginInput{Email: "missing@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
