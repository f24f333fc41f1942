package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, secret string, at time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(secret, time.Hour, func() time.Time { return at })
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := newTestService(t, testSecret, fixedTime)

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	sign := func(claims jwtCustomClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   func() string
		at      time.Time
		wantErr error
	}{
		{
			name: "valid token",
			token: func() string {
				tok, _ := newTestService(t, testSecret, fixedTime).GenerateToken(context.Background(), userID)
				return tok
			},
			at: fixedTime.Add(30 * time.Minute),
		},
		{
			name: "within clock skew after expiry",
			token: func() string {
				tok, _ := newTestService(t, testSecret, fixedTime).GenerateToken(context.Background(), userID)
				return tok
			},
			at: fixedTime.Add(time.Hour + time.Minute),
		},
		{
			name: "expired token",
			token: func() string {
				tok, _ := newTestService(t, testSecret, fixedTime).GenerateToken(context.Background(), userID)
				return tok
			},
			at:      fixedTime.Add(2 * time.Hour),
			wantErr: ErrExpiredToken,
		},
		{
			name: "issued in the future",
			token: func() string {
				tok, _ := newTestService(t, testSecret, fixedTime.Add(time.Hour)).GenerateToken(context.Background(), userID)
				return tok
			},
			at:      fixedTime,
			wantErr: ErrTokenNotYetValid,
		},
		{
			name: "wrong secret",
			token: func() string {
				tok, _ := newTestService(t, wrongSecret, fixedTime).GenerateToken(context.Background(), userID)
				return tok
			},
			at:      fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			token:   func() string { return "not.a.jwt" },
			at:      fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong token type",
			token: func() string {
				return sign(jwtCustomClaims{
					UserID:    userID,
					TokenType: "refresh",
					RegisteredClaims: jwt.RegisteredClaims{
						IssuedAt:  jwt.NewNumericDate(fixedTime),
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
					},
				})
			},
			at:      fixedTime,
			wantErr: ErrWrongTokenType,
		},
		{
			name: "missing expiry",
			token: func() string {
				return sign(jwtCustomClaims{
					UserID:           userID,
					TokenType:        "access",
					RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(fixedTime)},
				})
			},
			at:      fixedTime,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.token()
			claims, err := newTestService(t, testSecret, tt.at).ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwtCustomClaims{
		UserID:    uuid.New(),
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(fixedTime),
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestService(t, testSecret, fixedTime).ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abc123", 4)
	require.NoError(t, err)

	v := NewBcryptVerifier()
	assert.NoError(t, v.Compare(hash, "Abc123"))
	assert.Error(t, v.Compare(hash, "abc123"))
}
