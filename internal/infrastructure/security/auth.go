// Package security provides JWT issuing, validation and revocation
package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	issuer   = "culinaryos"
	audience = "culinaryos-api"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Claims represents JWT claims structure. The subject carries the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService issues HS256 access tokens and tracks revocations in the cache
type TokenService struct {
	secret     []byte
	expiration time.Duration
	cache      outbound.CacheRepository
	logger     *zap.Logger
	now        func() time.Time
}

var _ outbound.TokenIssuer = (*TokenService)(nil)

// NewTokenService creates a new token service
func NewTokenService(cfg config.AuthConfig, cache outbound.CacheRepository, logger *zap.Logger) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.JWTSecret),
		expiration: cfg.JWTExpiration,
		cache:      cache,
		logger:     logger.Named("tokens"),
		now:        time.Now,
	}
}

// Issue creates a signed access token for the user
func (s *TokenService) Issue(userID uuid.UUID, email string) (string, error) {
	now := s.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			Audience:  []string{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses the token and rejects it when expired, malformed or revoked
func (s *TokenService) Validate(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.cache.Exists(ctx, revokedKey(claims.ID))
	if err != nil {
		// Cache outages must not lock every user out
		s.logger.Warn("Failed to check token revocation", zap.Error(err))
	} else if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke blacklists the token until it would have expired anyway
func (s *TokenService) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.Set(ctx, revokedKey(claims.ID), []byte("revoked"), ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Info("Token revoked", zap.String("user_id", claims.Subject), zap.String("token_id", claims.ID))
	return nil
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return claims, nil
}

func revokedKey(tokenID string) string {
	return "revoked_token:" + tokenID
}
