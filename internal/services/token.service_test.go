package services

import (
	"testing"

	"rentalos/config"
	"rentalos/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	service, err := NewTokenService(config.Config{SessionSecret: secret})
	require.NoError(t, err)
	return service
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService(config.Config{})
	assert.Error(t, err)
}

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	service := testTokenService(t, "test-secret")

	member := models.Member{
		ID:   uuid.New(),
		Name: "Maren Holt",
		Role: models.RoleOwner,
	}

	token, err := service.Generate(member)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, member.ID, claims.MemberID)
	assert.Equal(t, models.RoleOwner, claims.Role)
	assert.Equal(t, member.ID.String(), claims.Subject)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := testTokenService(t, "secret-one")
	verifier := testTokenService(t, "secret-two")

	token, err := issuer.Generate(models.Member{ID: uuid.New(), Role: models.RoleGuest})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	service := testTokenService(t, "test-secret")

	_, err := service.Validate("not.a.token")
	assert.Error(t, err)
}
