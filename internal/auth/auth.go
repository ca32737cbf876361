package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	internal "github.com/yarnuri/stampclock/internal"
)

// Claims represents JWT token claims
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates access tokens.
type TokenGenerator interface {
	GenerateAccessToken(userID int64, username, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret         []byte
	AccessTokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:         []byte(secret),
		AccessTokenTTL: ttl,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID int64, username, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, internal.ErrInvalidToken
		}
		return j.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}

type ctxKey string

const contextClaimsKey ctxKey = "authClaims"

func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextClaimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextClaimsKey).(*Claims)
	return claims, ok
}
