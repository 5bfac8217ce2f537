package utils

import (
	"context"
	"testing"

	"github.com/estoque-digital/estoque-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIdentityFromContext(t *testing.T) {
	identity := models.Identity{Username: "admin", Role: models.RoleAdmin}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, identity)

	got, ok := GetIdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}
