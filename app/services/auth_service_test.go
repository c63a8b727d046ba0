package services

import (
	"testing"

	"microblog/app/repositories"
	"microblog/app/repositories/mock"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	users := mock.NewUserRepository()
	svc := NewAuthService(users)

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		id, err := svc.Register("alice", "pw1")
		require.NoError(t, err)
		require.Equal(t, 1, id)

		user, err := users.GetByUsername("alice")
		require.NoError(t, err)
		require.NotEqual(t, "pw1", user.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
	})

	t.Run("duplicate username returns ErrConflict", func(t *testing.T) {
		_, err := svc.Register("alice", "pw2")
		require.ErrorIs(t, err, repositories.ErrConflict)
	})

	t.Run("empty fields return a ValidationError", func(t *testing.T) {
		_, err := svc.Register("", "pw1")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "username", verr.Fields[0].Field)
		require.Equal(t, "Username is required", verr.Fields[0].Message)

		_, err = svc.Register("bob", "")
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Password is required", verr.Fields[0].Message)
	})
}

func TestVerifyCredentials(t *testing.T) {
	users := mock.NewUserRepository()
	svc := NewAuthService(users)

	_, err := svc.Register("alice", "pw1")
	require.NoError(t, err)

	t.Run("valid credentials return the user id", func(t *testing.T) {
		id, err := svc.VerifyCredentials("alice", "pw1")
		require.NoError(t, err)
		require.Equal(t, 1, id)
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		_, wrongPw := svc.VerifyCredentials("alice", "wrong")
		_, unknown := svc.VerifyCredentials("nobody", "pw1")
		require.ErrorIs(t, wrongPw, ErrInvalidCredentials)
		require.ErrorIs(t, unknown, ErrInvalidCredentials)
		require.Equal(t, wrongPw, unknown)
	})
}
