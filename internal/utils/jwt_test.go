package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
    at, err := NewAccessToken("test-secret", 42, "CUSTOMER", 15)
    require.NoError(t, err)
    assert.NotEmpty(t, at.Token)
    assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), at.Exp, 2*time.Second)

    claims := jwt.MapClaims{}
    tok, err := jwt.ParseWithClaims(at.Token, claims, func(*jwt.Token) (interface{}, error) {
        return []byte("test-secret"), nil
    })
    require.NoError(t, err)
    require.True(t, tok.Valid)
    assert.EqualValues(t, 42, claims["sub"])
    assert.Equal(t, "CUSTOMER", claims["role"])
}

func TestAccessTokenWrongSecret(t *testing.T) {
    at, err := NewAccessToken("test-secret", 42, "ADMIN", 15)
    require.NoError(t, err)

    _, err = jwt.Parse(at.Token, func(*jwt.Token) (interface{}, error) {
        return []byte("another-secret"), nil
    })
    assert.Error(t, err)
}

func TestRefreshTokenHash(t *testing.T) {
    rt, err := NewRefreshToken(7)
    require.NoError(t, err)
    assert.Len(t, rt.Raw, 96)

    // The stored hash is stable and never equals the raw value.
    h1 := HashRefreshRaw(rt.Raw)
    h2 := HashRefreshRaw(rt.Raw)
    assert.Equal(t, h1, h2)
    assert.NotEqual(t, rt.Raw, h1)
}

func TestPasswordHashRoundTrip(t *testing.T) {
    hash, err := HashPassword("s3cret", 4)
    require.NoError(t, err)
    assert.True(t, VerifyPassword(hash, "s3cret"))
    assert.False(t, VerifyPassword(hash, "wrong"))
}
