package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "storeapi-test"
	testAudience = "storeapi-test-clients"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testSecret, testIssuer, testAudience)

	token, err := svc.Generate("user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Contains(t, claims.Audience, testAudience)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_Validate_Failures(t *testing.T) {
	svc := NewJWTService(testSecret, testIssuer, testAudience)

	sign := func(claims *jwt.RegisteredClaims, secret string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)
		return token
	}

	base := func() *jwt.RegisteredClaims {
		return &jwt.RegisteredClaims{
			Subject:   "user@example.com",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "wrong secret",
			token: func() string {
				return sign(base(), "other-secret")
			}(),
		},
		{
			name: "wrong issuer",
			token: func() string {
				claims := base()
				claims.Issuer = "someone-else"
				return sign(claims, testSecret)
			}(),
		},
		{
			name: "wrong audience",
			token: func() string {
				claims := base()
				claims.Audience = jwt.ClaimStrings{"other-clients"}
				return sign(claims, testSecret)
			}(),
		},
		{
			name: "expired",
			token: func() string {
				claims := base()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				return sign(claims, testSecret)
			}(),
		},
		{
			name:  "garbage",
			token: "not.a.token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
