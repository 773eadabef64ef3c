package app

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"careerassign/internal/common"
	"careerassign/internal/domain/user"
	"careerassign/internal/security"
)

type AuthService struct {
	users     user.Repository
	jwt       *security.JWTProvider
	logger    Logger
	accessTTL time.Duration
}

func NewAuthService(users user.Repository, jwt *security.JWTProvider, logger Logger, accessTTL time.Duration) *AuthService {
	return &AuthService{users: users, jwt: jwt, logger: logger, accessTTL: accessTTL}
}

type AuthResult struct {
	User      user.User `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *AuthService) Register(ctx context.Context, email, password, roleValue string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, common.NewValidationError("invalid registration", map[string]string{"email": "valid email is required"})
	}
	if len(password) < 8 {
		return nil, common.NewValidationError("invalid registration", map[string]string{"password": "password must be at least 8 characters"})
	}
	role, ok := user.ParseRole(roleValue)
	if !ok || role == user.RoleAdmin {
		return nil, common.NewValidationError("invalid registration", map[string]string{"role": "role must be candidate, institute, or company"})
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, common.NewError(common.CodeConflict, "email already registered", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	created, err := s.users.Create(ctx, user.User{Email: email, PasswordHash: hash, Role: role})
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Info("registered user " + created.ID.String() + " as " + string(role))
	}
	return s.issue(*created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	return s.issue(*account)
}

func (s *AuthService) issue(account user.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.Generate(account.ID, string(account.Role), s.accessTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	account.PasswordHash = nil
	return &AuthResult{User: account, Token: token, ExpiresAt: expiresAt}, nil
}
