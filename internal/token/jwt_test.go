package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	j.now = func() time.Time { return issued }

	access, err := j.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_WrongSecret(t *testing.T) {
	access, err := NewJWT("secret", time.Hour).GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("other", time.Hour).ParseAccessToken(access)
	require.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	_, err := NewJWT("secret", time.Hour).ParseAccessToken("not-a-token")
	require.Error(t, err)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:    uuid.New(),
		TokenType: "refresh",
	})
	s, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.ParseAccessToken(s)
	require.Error(t, err)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
		UserID:           uuid.New(),
		TokenType:        typeAccess,
	})
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret", time.Hour).ParseAccessToken(s)
	require.Error(t, err)
}
