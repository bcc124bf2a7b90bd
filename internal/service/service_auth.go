package service

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/utils"
	"github.com/MKhiriev/go-policy-desk/models"
)

// authService verifies bearer tokens minted by the external identity service.
// It never issues tokens itself.
type authService struct {
	// tokenSignKey is the HMAC secret shared with the identity service.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Empty disables the check.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token settings in cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates a raw JWT and extracts the caller identity from its
// subject and email claims.
//
// Any validation failure (expired, wrong issuer, wrong signature, missing
// claims) is normalised to ErrTokenIsExpiredOrInvalid so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	identity, err := token.Identity()
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token has no identity")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return identity, nil
}
