package utils

import (
	"testing"
	"time"

	"github.com/estoque-digital/estoque-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "estoque-server"
	testSignKey = "test-sign-key"
)

func adminIdentity() models.Identity {
	return models.Identity{Username: "admin", Role: models.RoleAdmin}
}

func TestGenerateJWTToken_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		duration time.Duration
		signKey  string
		wantErr  bool
	}{
		{
			name:     "valid admin token",
			issuer:   testIssuer,
			identity: adminIdentity(),
			duration: 24 * time.Hour,
			signKey:  testSignKey,
		},
		{
			name:     "team member token carries name and title",
			issuer:   testIssuer,
			identity: models.Identity{Username: "joao", Role: models.RoleTeam, Name: "João", Title: "Vendedor"},
			duration: time.Hour,
			signKey:  testSignKey,
		},
		{
			name:     "empty issuer",
			identity: adminIdentity(),
			duration: time.Hour,
			signKey:  testSignKey,
			wantErr:  true,
		},
		{
			name:     "empty username",
			issuer:   testIssuer,
			identity: models.Identity{Role: models.RoleAdmin},
			duration: time.Hour,
			signKey:  testSignKey,
			wantErr:  true,
		},
		{
			name:     "zero duration",
			issuer:   testIssuer,
			identity: adminIdentity(),
			signKey:  testSignKey,
			wantErr:  true,
		},
		{
			name:     "empty sign key",
			issuer:   testIssuer,
			identity: adminIdentity(),
			duration: time.Hour,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.signKey)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.SignedString)
			assert.Equal(t, tt.identity.Username, token.Username)
			assert.Equal(t, tt.identity.Role, token.Role)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	identity := models.Identity{Username: "maria", Role: models.RoleTeam, Name: "Maria", Title: "Suporte"}

	issued, err := GenerateJWTToken(testIssuer, identity, 24*time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, "maria", parsed.Username)
	assert.Equal(t, models.RoleTeam, parsed.Role)
	assert.Equal(t, "Maria", parsed.Name)
	assert.Equal(t, "Suporte", parsed.Title)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// a token that lived for a nanosecond is already past its exp claim
	issued, err := GenerateJWTToken(testIssuer, adminIdentity(), time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_StillValidBeforeExpiry(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, adminIdentity(), time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.NoError(t, err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, adminIdentity(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("other-service", adminIdentity(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt", testSignKey, testIssuer)
	assert.Error(t, err)
}
