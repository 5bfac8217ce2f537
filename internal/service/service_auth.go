package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estoque-digital/estoque-server/internal/config"
	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/store"
	"github.com/estoque-digital/estoque-server/internal/utils"
	"github.com/estoque-digital/estoque-server/models"
)

// authService is the concrete implementation of AuthService.
//
// Two kinds of operator can log in:
//   - the static admin, whose username and password come from configuration;
//   - any team roster member, authenticated with the shared team password.
//
// Passwords are compared in plaintext against the configured secrets. This
// mirrors the original deployment and is a documented weakness kept on
// purpose.
type authService struct {
	// teamRepository resolves roster usernames during team login.
	teamRepository store.TeamRepository

	// adminUsername and adminPassword are the static administrator
	// credentials.
	adminUsername string
	adminPassword string

	// teamPassword is the shared password accepted for any roster member.
	// When empty, team login is disabled.
	teamPassword string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// TeamRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(teamRepository store.TeamRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		teamRepository: teamRepository,
		adminUsername:  cfg.AdminUsername,
		adminPassword:  cfg.AdminPassword,
		teamPassword:   cfg.TeamPassword,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an operator and issues a signed session token.
//
// The admin username is checked first; any other username is looked up in the
// team roster and verified against the shared team password. A roster member
// is never accepted with the admin password.
//
// Returns the issued token or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrWrongPassword if the credentials do not match any operator.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	identity, err := a.resolveIdentity(ctx, credentials)
	if err != nil {
		return models.Token{}, err
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("username", identity.Username).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	log.Info().Str("username", identity.Username).Str("role", identity.Role).Msg("operator logged in")

	return token, nil
}

// ParseToken validates a compact JWT string and returns the decoded token.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		return models.Token{}, fmt.Errorf("token validation failed: %w", err)
	}

	return token, nil
}

// resolveIdentity matches the credentials against the admin secret first,
// then against the roster with the shared team password.
func (a *authService) resolveIdentity(ctx context.Context, credentials models.Credentials) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == a.adminUsername {
		if credentials.Password != a.adminPassword {
			log.Error().Str("username", credentials.Username).Msg("wrong admin password")
			return models.Identity{}, ErrWrongPassword
		}

		return models.Identity{
			Username: credentials.Username,
			Role:     models.RoleAdmin,
		}, nil
	}

	if a.teamPassword == "" {
		log.Error().Str("username", credentials.Username).Msg("team login disabled, no team password configured")
		return models.Identity{}, ErrWrongPassword
	}

	member, err := a.teamRepository.FindByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			log.Error().Str("username", credentials.Username).Msg("unknown operator")
			return models.Identity{}, ErrWrongPassword
		}
		log.Err(err).Str("username", credentials.Username).Msg("roster lookup failed")
		return models.Identity{}, fmt.Errorf("roster lookup failed: %w", err)
	}

	if credentials.Password != a.teamPassword {
		log.Error().Str("username", credentials.Username).Msg("wrong team password")
		return models.Identity{}, ErrWrongPassword
	}

	return models.Identity{
		Username: member.Username,
		Role:     models.RoleTeam,
		Name:     member.Name,
		Title:    member.Role,
	}, nil
}
