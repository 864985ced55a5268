package auth

import (
	"testing"
	"time"

	"medreminder/config"
	"medreminder/internal/domain/entity"
	"medreminder/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	customer := entity.Customer{ID: uuid.New(), Username: "ada"}
	session := entity.NewSession(customer, now, time.Hour)

	token, err := svc.IssueToken(session)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, parsed.CustomerID)
	assert.Equal(t, "ada", parsed.Username)
	assert.True(t, session.IssuedAt.Equal(parsed.IssuedAt))
	assert.True(t, session.ExpiresAt.Equal(parsed.ExpiresAt))
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("a_completely_different_secret_value"))
	require.NoError(t, err)

	customer := entity.Customer{ID: uuid.New(), Username: "ada"}
	expired, err := svc.IssueToken(entity.NewSession(customer, time.Now().Add(-2*time.Hour), time.Hour))
	require.NoError(t, err)
	forged, err := other.IssueToken(entity.NewSession(customer, time.Now(), time.Hour))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"iss": tokenIssuer,
		"cid": customer.ID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "invalid.token.string"},
		{"empty", ""},
		{"expired", expired},
		{"wrong secret", forged},
		{"unsigned", noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

func TestJWTService_MissingCustomerID(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": tokenIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
