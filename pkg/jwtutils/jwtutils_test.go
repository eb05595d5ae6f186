package jwtutils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestIsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name    string
		token   string
		expired bool
	}{
		{
			name:    "future exp",
			token:   sign(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}),
			expired: false,
		},
		{
			name:    "past exp",
			token:   sign(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()}),
			expired: true,
		},
		{
			name:    "no exp",
			token:   sign(t, jwt.MapClaims{"sub": "user"}),
			expired: false,
		},
		{
			name:    "garbage",
			token:   "not-a-jwt",
			expired: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, IsExpired(tt.token, now))
		})
	}
}

func TestExpiresAt(t *testing.T) {
	exp := time.Unix(1_800_000_000, 0)
	at, ok, err := ExpiresAt(sign(t, jwt.MapClaims{"exp": exp.Unix()}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, exp.Equal(at))
}
