package services

import (
	"time"

	"rentalos/config"
	"rentalos/internal/logger"
	"rentalos/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionDuration is how long a member session token stays valid
const SessionDuration = 24 * time.Hour

// SessionClaims is what a member session token carries
type SessionClaims struct {
	MemberID uuid.UUID   `json:"memberId"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates member session tokens
type TokenService struct {
	secret []byte
	log    logger.Logger
}

func NewTokenService(config config.Config) (*TokenService, error) {
	log := logger.New("tokenService")

	if config.SessionSecret == "" {
		return nil, log.ErrMsg("session secret is required")
	}

	return &TokenService{
		secret: []byte(config.SessionSecret),
		log:    log,
	}, nil
}

// Generate issues a signed session token for a member
func (s *TokenService) Generate(member models.Member) (string, error) {
	log := s.log.Function("Generate")

	now := time.Now().UTC()
	claims := SessionClaims{
		MemberID: member.ID,
		Role:     member.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", log.Err("failed to sign session token", err, "memberID", member.ID)
	}

	return signed, nil
}

// Validate parses a session token and returns its claims
func (s *TokenService) Validate(tokenString string) (*SessionClaims, error) {
	log := s.log.Function("Validate")

	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return nil, log.Err("failed to parse session token", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, log.ErrMsg("invalid session token")
	}

	return claims, nil
}
