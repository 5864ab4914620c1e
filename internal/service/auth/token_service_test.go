package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/hunterprice/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

func newTestService(t *testing.T) *hmacTokenService {
	t.Helper()
	svc, err := NewTokenService(config.AuthConfig{Enabled: true, JWTSecret: testSecret})
	require.NoError(t, err)
	return svc.(*hmacTokenService)
}

func TestNewTokenService_ShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService(config.AuthConfig{Enabled: true, JWTSecret: "short"})
	assert.ErrorIs(t, err, ErrSecretTooShort)
}

func TestGenerateAndValidate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	issued := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	svc.timeFunc = func() time.Time { return issued }
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "operator")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
	assert.True(t, issued.Equal(claims.IssuedAt))
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_IgnoresExpiry(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "old",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		NotBefore: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	got, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "old", got.Subject)
}

func TestValidateToken_Rejects(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	wrongKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).
		SignedString([]byte("another-secret-that-is-32-characters-long"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "x"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"wrong key":    wrongKey,
		"wrong method": hs512,
		"alg none":     unsigned,
		"garbage":      "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(context.Background(), token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err = svc.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestParseAuthorizationHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "Token xyz", want: "xyz"},
		{header: "", wantErr: ErrMissingToken},
		{header: "   ", wantErr: ErrMissingToken},
		{header: "abc.def.ghi", wantErr: ErrMalformedHeader},
		{header: "Bearer a b", wantErr: ErrMalformedHeader},
	}
	for _, tc := range tests {
		got, err := ParseAuthorizationHeader(tc.header)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, "header %q", tc.header)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}
