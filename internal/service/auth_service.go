package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/config"
	"schoolfeedback/internal/repository"
)

type AuthService interface {
	// Login returns a signed token for the account matching email and
	// password, or a root token when they match the configured root pair.
	Login(ctx context.Context, email, password string) (string, error)
	Validate(token string) (auth.Identity, error)
}

type authService struct {
	studentRepo   repository.StudentRepository
	cfg           *config.Config
	authenticator *auth.Authenticator
	logger        *slog.Logger
	now           func() time.Time
}

func NewAuthService(studentRepo repository.StudentRepository, cfg *config.Config, logger *slog.Logger) AuthService {
	return &authService{
		studentRepo:   studentRepo,
		cfg:           cfg,
		authenticator: auth.NewAuthenticator(cfg.Token.Secret),
		logger:        logger,
		now:           time.Now,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	issuedAt := s.now()

	if s.matchesRoot(email, password) {
		s.logger.Warn("root login issued")
		return s.sign(auth.RootClaims(uuid.NewString(), issuedAt, s.cfg.RootTTL()))
	}

	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	s.logger.Debug("login issued", "student_id", student.ID)
	return s.sign(auth.NewClaims(student.ID, student.IsAdmin, uuid.NewString(), issuedAt, s.cfg.TokenTTL()))
}

func (s *authService) Validate(token string) (auth.Identity, error) {
	return s.authenticator.WithClock(s.now).Validate(token)
}

// matchesRoot compares both fields in constant time and never consults the
// student table.
func (s *authService) matchesRoot(email, password string) bool {
	if !s.cfg.RootEnabled() {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.Root.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Root.Password))
	return emailOK&passwordOK == 1
}

func (s *authService) sign(claims auth.Claims) (string, error) {
	token, err := auth.Encode(claims, s.cfg.Token.Secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
