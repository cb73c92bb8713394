package security

import (
	"context"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/memory"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// TokenServiceTestSuite provides a test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	cache   *memory.CacheRepository
	service *TokenService
	ctx     context.Context
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.cache = memory.NewCacheRepository(time.Hour)
	suite.service = NewTokenService(config.AuthConfig{
		JWTSecret:     "test-secret-key-for-testing-only-32-bytes",
		JWTExpiration: time.Hour,
	}, suite.cache, zap.NewNop())
}

func (suite *TokenServiceTestSuite) TearDownTest() {
	suite.cache.Close()
}

func (suite *TokenServiceTestSuite) TestIssueAndValidate() {
	userID := uuid.New()

	token, err := suite.service.Issue(userID, "cook@example.com")
	suite.Require().NoError(err)
	suite.NotEmpty(token)

	claims, err := suite.service.Validate(suite.ctx, token)
	suite.Require().NoError(err)
	suite.Equal(userID.String(), claims.Subject)
	suite.Equal("cook@example.com", claims.Email)

	id, err := claims.UserID()
	suite.Require().NoError(err)
	suite.Equal(userID, id)
}

func (suite *TokenServiceTestSuite) TestRejectsTamperedAndForeignTokens() {
	token, err := suite.service.Issue(uuid.New(), "cook@example.com")
	suite.Require().NoError(err)

	_, err = suite.service.Validate(suite.ctx, token+"x")
	suite.ErrorIs(err, ErrInvalidToken)

	other := NewTokenService(config.AuthConfig{
		JWTSecret:     "another-secret-key-that-is-long-enough",
		JWTExpiration: time.Hour,
	}, suite.cache, zap.NewNop())
	_, err = other.Validate(suite.ctx, token)
	suite.ErrorIs(err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": uuid.New().String()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	suite.Require().NoError(err)
	_, err = suite.service.Validate(suite.ctx, unsigned)
	suite.ErrorIs(err, ErrInvalidToken)
}

func (suite *TokenServiceTestSuite) TestExpiredToken() {
	suite.service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := suite.service.Issue(uuid.New(), "cook@example.com")
	suite.Require().NoError(err)

	suite.service.now = time.Now
	_, err = suite.service.Validate(suite.ctx, token)
	suite.ErrorIs(err, ErrInvalidToken)
}

func (suite *TokenServiceTestSuite) TestRevoke() {
	token, err := suite.service.Issue(uuid.New(), "cook@example.com")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Revoke(suite.ctx, token))

	_, err = suite.service.Validate(suite.ctx, token)
	suite.ErrorIs(err, ErrTokenRevoked)

	fresh, err := suite.service.Issue(uuid.New(), "cook@example.com")
	suite.Require().NoError(err)
	_, err = suite.service.Validate(suite.ctx, fresh)
	suite.NoError(err)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
