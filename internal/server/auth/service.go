// Package auth orchestrates registration, login, session validation, and the
// OTP-based password-reset flow over the user store and the in-memory
// registries.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndmitriev/gatekeeper/internal/cryptox"
	"github.com/ndmitriev/gatekeeper/internal/logging"
	"github.com/ndmitriev/gatekeeper/internal/server/mailer"
	"github.com/ndmitriev/gatekeeper/internal/server/otp"
	"github.com/ndmitriev/gatekeeper/internal/server/sessions"
	"github.com/ndmitriev/gatekeeper/internal/server/users"
	"github.com/ndmitriev/gatekeeper/internal/shared"
)

// minPasswordLen is the only password policy enforced at registration and
// reset.
const minPasswordLen = 6

// Delivery channels reported by SendResetCode. The values live in shared so
// the CLI client can interpret them too.
const (
	ChannelEmail = shared.ChannelEmail
	ChannelMock  = shared.ChannelMock
)

// UserView is the sanitized account representation returned to callers.
// It never carries the password hash.
type UserView struct {
	ID        string
	FullName  string
	Email     string
	Role      string
	CreatedAt time.Time
}

// LoginResult bundles the authenticated user with the freshly issued session.
type LoginResult struct {
	User      UserView
	SessionID string
	ExpiresAt time.Time
}

// ResetDelivery describes how a reset code was (or was not) delivered.
// Code is populated only on the mock channel, which exists for environments
// without email configured; real deliveries never echo the code back.
type ResetDelivery struct {
	Channel   string
	Code      string
	ExpiresAt time.Time
}

// Identity is the sanitized view of a validated session.
type Identity struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

type Service struct {
	repo     users.Repository
	otps     *otp.Registry
	sessions *sessions.Registry
	mailer   mailer.Mailer // nil when no gateway is configured
	logger   logging.Logger
}

func NewService(repo users.Repository, otps *otp.Registry, sess *sessions.Registry, m mailer.Mailer, l logging.Logger) *Service {
	return &Service{
		repo:     repo,
		otps:     otps,
		sessions: sess,
		mailer:   m,
		logger:   l.With("module", "auth"),
	}
}

// NormalizeEmail lowercases and trims an email address. Every identity
// lookup in the system goes through this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with role "user" and returns the sanitized
// view. Duplicate emails yield shared.ErrorAlreadyExists; the database
// unique index is the authority, the pre-check only shortcuts the common
// case.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (*UserView, error) {

	email = NormalizeEmail(email)
	if email == "" {
		return nil, shared.ErrorValidation
	}
	if len(password) < minPasswordLen {
		return nil, shared.ErrorValidation
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, shared.ErrorAlreadyExists
	} else if !errors.Is(err, shared.ErrorNotFound) {
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return nil, shared.ErrorInternal
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, shared.ErrorInternal
	}

	user := &users.User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		PasswordHash: hash,
		Role:         users.RoleUser,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, shared.ErrorAlreadyExists) {
			return nil, shared.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "user creation failed", "error", err.Error())
		return nil, shared.ErrorInternal
	}

	return sanitize(user), nil
}

// Login verifies the credentials and issues a new session. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return nil, shared.ErrorInternal
	}

	if !cryptox.CheckPassword(password, user.PasswordHash) {
		return nil, shared.ErrorUnauthorized
	}

	session, err := s.sessions.Create(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, shared.ErrorInternal
	}

	return &LoginResult{
		User:      *sanitize(user),
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// SendResetCode issues a reset code for a known account and attempts
// delivery. With no mailer configured, or when delivery fails, the code is
// returned on the disclosed mock channel instead of aborting the flow.
func (s *Service) SendResetCode(ctx context.Context, email string) (*ResetDelivery, error) {

	email = NormalizeEmail(email)
	if email == "" {
		return nil, shared.ErrorValidation
	}

	if _, err := s.repo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return nil, shared.ErrorInternal
	}

	code, expiresAt, err := s.otps.Issue(email)
	if err != nil {
		return nil, shared.ErrorInternal
	}

	if s.mailer == nil {
		return &ResetDelivery{Channel: ChannelMock, Code: code, ExpiresAt: expiresAt}, nil
	}

	if err := s.mailer.SendResetCode(ctx, email, code, s.otps.TTL()); err != nil {
		s.logger.Warn(ctx, "reset code delivery failed, falling back to mock channel",
			"email", email, "error", err.Error())
		return &ResetDelivery{Channel: ChannelMock, Code: code, ExpiresAt: expiresAt}, nil
	}

	return &ResetDelivery{Channel: ChannelEmail, ExpiresAt: expiresAt}, nil
}

// VerifyResetCode checks a code without resetting anything. A successful
// check consumes the code.
func (s *Service) VerifyResetCode(ctx context.Context, email, code string) error {

	email = NormalizeEmail(email)
	if email == "" || code == "" {
		return shared.ErrorValidation
	}

	return s.otps.Verify(email, code)
}

// ResetPassword validates the code and replaces the stored hash. The code is
// consumed only after the store update succeeds, so a failed update leaves it
// valid for a retry.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {

	email = NormalizeEmail(email)
	if email == "" || code == "" {
		return shared.ErrorValidation
	}
	if len(newPassword) < minPasswordLen {
		return shared.ErrorValidation
	}

	if err := s.otps.Check(email, code); err != nil {
		return err
	}

	if _, err := s.repo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return shared.ErrorNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return shared.ErrorInternal
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return shared.ErrorInternal
	}

	if err := s.repo.UpdatePassword(ctx, email, hash); err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return shared.ErrorNotFound
		}
		s.logger.Error(ctx, "password update failed", "error", err.Error())
		return shared.ErrorInternal
	}

	s.otps.Consume(email)
	return nil
}

// ValidateSession resolves a session id to the identity it represents.
func (s *Service) ValidateSession(ctx context.Context, sessionID string) (*Identity, error) {

	if sessionID == "" {
		return nil, shared.ErrorValidation
	}

	session, err := s.sessions.Validate(sessionID)
	if err != nil {
		return nil, err
	}

	return &Identity{
		UserID:    session.UserID,
		Email:     session.Email,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout destroys the session. Logging out an unknown or already destroyed
// session succeeds.
func (s *Service) Logout(ctx context.Context, sessionID string) {
	s.sessions.Destroy(sessionID)
}

func sanitize(u *users.User) *UserView {
	return &UserView{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
