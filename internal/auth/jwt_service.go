package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry is how long an issued bearer token stays valid. There is no
// refresh; clients upsert the user again to obtain a new token.
const TokenExpiry = time.Hour

var (
	// ErrUnauthenticated is returned when no token was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidToken is returned when a token fails signature, expiry or claim checks.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims represents JWT claims.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue signs a token carrying the email claim.
func (s *JWTService) Issue(email string) (string, error) {
	now := s.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token and returns the email it was issued for.
func (s *JWTService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrUnauthenticated
	}

	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	// The parser validates against the wall clock; re-check with ours so
	// tests can move time.
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(s.now()) {
		return "", ErrInvalidToken
	}
	if claims.Email == "" {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}
