package processor

import (
	"errors"

	"vinoteca-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

var ErrInvalidJWTToken = errors.New("invalid jwt token")

var ErrParseJWTToken = errors.New("failed to parse jwt token")

var ErrExpiredToken = errors.New("token expired")

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
}
