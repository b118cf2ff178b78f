package jwt_test

import (
	"testing"
	"time"

	"github.com/edumfa/edumfa-go/pkg/jwt"
	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func testToken(t *testing.T, claims *jwt.Claims) string {
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return token
}

func TestDecode(t *testing.T) {
	exp := time.Now().Add(1 * time.Hour)

	token := testToken(t, &jwt.Claims{
		Username: "service",
		Realm:    "defrealm",
		Role:     "admin",
		AuthType: "password",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	})

	claims, err := jwt.Decode(token)
	require.NoError(t, err)
	require.Equal(t, "service", claims.Username)
	require.Equal(t, "defrealm", claims.Realm)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "password", claims.AuthType)

	d := claims.ExpiresIn()
	require.True(t, d > 59*time.Minute)
	require.True(t, d <= time.Hour)
}

func TestDecodeExpired(t *testing.T) {
	// decoding skips signature and expiry validation
	token := testToken(t, &jwt.Claims{
		Username: "service",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	})

	claims, err := jwt.Decode(token)
	require.NoError(t, err)
	require.Equal(t, "service", claims.Username)
	require.Equal(t, time.Duration(0), claims.ExpiresIn())
}

func TestDecodeNoExpiry(t *testing.T) {
	token := testToken(t, &jwt.Claims{Username: "service"})

	claims, err := jwt.Decode(token)
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), claims.ExpiresIn())
}

func TestDecodeInvalid(t *testing.T) {
	_, err := jwt.Decode("not a token")
	require.Error(t, err)
}
