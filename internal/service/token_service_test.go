package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-unit-tests"
	testDID       = "V4SGRU86Z58d6TV7PBUe6f"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, 24*time.Hour, "test-issuer")

	tokenStr, expiresAt, err := svc.Generate(testDID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, testDID, claims.SubmitterDID)
}

func TestJWTTokenService_EmptySubject(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "issuer")

	_, _, err := svc.Generate("")
	assert.Error(t, err)
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, -1*time.Hour, "test-issuer")

	tokenStr, _, err := svc.Generate(testDID)
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err, "expired token should fail validation")
}

func TestJWTTokenService_Rejections(t *testing.T) {
	signer := NewJWTTokenService("secret-1", 24*time.Hour, "issuer")
	tokenStr, _, err := signer.Generate(testDID)
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   *JWTTokenService
		token string
	}{
		{"different secret", NewJWTTokenService("secret-2", 24*time.Hour, "issuer"), tokenStr},
		{"different issuer", NewJWTTokenService("secret-1", 24*time.Hour, "other"), tokenStr},
		{"garbage", signer, "not.a.valid.jwt"},
		{"empty", signer, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.Validate(tt.token)
			assert.Error(t, err)
		})
	}
}
