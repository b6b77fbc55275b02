package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"frankies/internal/service/account/domain"
)

// JWTIssuer mints HS256 session tokens for authenticated users.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (i *JWTIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.FirstName + " " + user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
