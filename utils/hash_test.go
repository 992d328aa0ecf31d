package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestCheckPasswordHashRejectsGarbage(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

func TestCreateDefaultPassword(t *testing.T) {
	p1, h1, err := CreateDefaultPassword()
	require.NoError(t, err)
	p2, h2, err := CreateDefaultPassword()
	require.NoError(t, err)

	// Two generated passwords must never collide
	assert.NotEqual(t, p1, p2)
	assert.NotEqual(t, h1, h2)

	assert.True(t, CheckPasswordHash(p1, h1))
}
