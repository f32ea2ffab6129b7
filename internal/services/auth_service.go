package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"courtside/internal/config"
	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/utils"
	"courtside/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New(utils.ErrInvalidCredentials)

// AuthService owns admin identity. Every admin-facing surface resolves the
// caller through this service, so there is exactly one place that decides
// who counts as an admin.
type AuthService struct {
	adminRepo interfaces.AdminRepository
	security  config.SecurityConfig
	logger    *logger.Logger
}

func NewAuthService(adminRepo interfaces.AdminRepository, security config.SecurityConfig, logger *logger.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		security:  security,
		logger:    logger,
	}
}

// Login checks credentials against the stored hash and mints an access
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*utils.TokenResponse, *models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrAdminNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Email, admin.Name, s.security.JWTSecret, s.security.JWTAccessTokenTTL)
	if err != nil {
		return nil, nil, err
	}

	s.logger.WithField("admin", admin.Email).Info("Admin logged in")
	return token, admin, nil
}

// EnsureSeedAdmin creates the bootstrap admin from the environment when the
// collection is empty. Without it a fresh deployment has no way to log in.
func (s *AuthService) EnsureSeedAdmin(ctx context.Context) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if s.security.AdminEmail == "" || s.security.AdminPassword == "" {
		s.logger.Warn("No admins exist and ADMIN_EMAIL/ADMIN_PASSWORD are unset, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.security.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Email:        strings.ToLower(s.security.AdminEmail),
		Name:         s.security.AdminName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.WithField("admin", admin.Email).Info("Seeded initial admin account")
	return nil
}
