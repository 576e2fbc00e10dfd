package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/utils"
)

// authService is the concrete implementation of AuthService.
// The admin credential is a single bcrypt hash held in configuration;
// a successful login yields an HMAC-SHA256 signed JWT.
type authService struct {
	// passwordHash is the bcrypt hash of the admin password. The plain
	// password never reaches storage or logs.
	passwordHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with the security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		passwordHash:  cfg.AdminPasswordHash,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login compares password against the configured bcrypt hash and issues a
// session token on match.
//
// Returns the signed token string or:
//   - ErrInvalidDataProvided if password is empty.
//   - ErrWrongPassword if the comparison fails.
//   - ErrTokenCreationFailed (wrapped) if JWT generation fails.
func (a *authService) Login(ctx context.Context, password string) (string, error) {
	log := logger.FromContext(ctx)

	if password == "" {
		log.Error().Msg("empty password provided")
		return "", ErrInvalidDataProvided
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		log.Warn().Msg("admin login rejected")
		return "", ErrWrongPassword
	}

	token, err := utils.GenerateAdminToken(a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("token generation failed")
		return "", ErrTokenCreationFailed
	}

	return token, nil
}

// VerifyToken validates a raw session token string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) VerifyToken(ctx context.Context, token string) error {
	if err := utils.ValidateAdminToken(token, a.tokenSignKey, a.tokenIssuer); err != nil {
		return ErrTokenIsExpiredOrInvalid
	}
	return nil
}
