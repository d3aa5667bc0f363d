package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret-key-test-secret-key!"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, "acc-1", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "alice", claims.AccountName)
	assert.Equal(t, "gophsave", claims.Issuer)
	assert.Equal(t, "acc-1", claims.Subject)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	cfg := testJWTConfig()

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims CustomClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	valid := func() CustomClaims {
		now := time.Now()
		return CustomClaims{
			AccountID: "acc-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "gophsave",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
	}

	tests := []struct {
		token func(t *testing.T) string
		name  string
	}{
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret-!!"), valid())
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				claims := valid()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return sign(t, jwt.SigningMethodHS256, cfg.Secret, claims)
			},
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				claims := valid()
				claims.Issuer = "someone-else"
				return sign(t, jwt.SigningMethodHS256, cfg.Secret, claims)
			},
		},
		{
			name: "no account",
			token: func(t *testing.T) string {
				claims := valid()
				claims.AccountID = ""
				return sign(t, jwt.SigningMethodHS256, cfg.Secret, claims)
			},
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateAccessToken(cfg, tt.token(t))
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
