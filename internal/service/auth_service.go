package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/merrickdc/cms_api/internal/config"
	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/repository"
	"github.com/merrickdc/cms_api/internal/utils"
)

// AuthService handles admin login and default-identity bootstrap.
type AuthService struct {
	adminRepo *repository.AdminUserRepository
	secret    []byte
}

// NewAuthService constructs an AuthService with the process-wide signing
// secret.
func NewAuthService(adminRepo *repository.AdminUserRepository, secret []byte) *AuthService {
	return &AuthService{adminRepo: adminRepo, secret: secret}
}

// Login verifies credentials and issues a bearer token. All failure modes
// collapse into ErrInvalidCredentials so callers cannot probe for known
// emails. The last-login timestamp is stamped on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Warn().Str("email", email).Msg("Login attempt for unknown email")
		return "", nil, utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.Email, s.secret)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	if err := s.adminRepo.UpdateLastLogin(ctx, user.Email, now); err != nil {
		// Login still succeeds; the stamp is best-effort bookkeeping.
		log.Error().Err(err).Str("email", email).Msg("Failed to stamp last login")
	} else {
		user.LastLoginAt = &now
	}

	log.Info().Str("email", email).Msg("Login successful")
	return token, user, nil
}

// EnsureDefaultAdmin creates the single default admin identity when none
// exists. The configured initial password is meant to be changed after
// deployment.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, cfg *config.AdminConfig) error {
	n, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.AdminUser{
		Email:        cfg.Email,
		PasswordHash: string(hashed),
		Name:         cfg.Name,
		Role:         "admin",
	}
	if err := s.adminRepo.Create(ctx, user); err != nil {
		return err
	}

	log.Info().Str("email", cfg.Email).Msg("Default admin user created")
	return nil
}
