package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalejo-dev/gyie_backend/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("clave-admin")
	require.NoError(t, err)
	assert.NotEqual(t, "clave-admin", hash)

	assert.True(t, utils.CheckPasswordHash("clave-admin", hash))
	assert.False(t, utils.CheckPasswordHash("otra-clave", hash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("clave-admin", "not-a-bcrypt-hash"))
}
