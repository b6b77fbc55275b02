package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"frankies/internal/service/account/domain"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret!")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret!", hash)

	require.NoError(t, hasher.Compare(hash, "s3cret!"))
	require.Error(t, hasher.Compare(hash, "wrong"))
}

func TestJWTIssuerClaims(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)
	user := &domain.User{ID: "user-1", Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "jane@example.com", claims.Email)
	require.Equal(t, "Jane Doe", claims.Name)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
