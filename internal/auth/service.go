// Package auth implements credential registration and login for the
// SpectrumSync backend: input validation, duplicate-account checks, password
// hashing, and session token issuance.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spectrumsync/backend/internal/models"
	"github.com/spectrumsync/backend/internal/password"
)

// Field bounds. The password bound is the bcrypt input limit.
const (
	maxUsernameLen = 50
	maxEmailLen    = 254
	maxPasswordLen = 72
)

// UserStore defines the interface for user persistence. Lookups that match
// nothing return ErrUserNotFound; CreateUser returns ErrDuplicateAccount when
// the email is already taken.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// TokenSigner issues a signed session token for a user id. Satisfied by
// *TokenIssuer.
type TokenSigner interface {
	Issue(userID string) (string, error)
}

// Result is the outcome of a successful register or login.
type Result struct {
	Token string
	User  models.PublicUser
}

// Service orchestrates the register and login flows. It holds no mutable
// state; all state lives in the UserStore.
type Service struct {
	users  UserStore
	hasher password.Hasher
	tokens TokenSigner
}

func NewService(users UserStore, hasher password.Hasher, tokens TokenSigner) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens}
}

// NormalizeEmail fixes the case policy: emails are stored and compared
// lowercased, at registration and at login lookup alike.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user and returns a session token for it.
func (s *Service) Register(ctx context.Context, username, email, plaintext string) (*Result, error) {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)
	if username == "" || email == "" || strings.TrimSpace(plaintext) == "" {
		return nil, &ValidationError{Reason: "username, email, and password are required"}
	}
	if len(username) > maxUsernameLen || len(email) > maxEmailLen {
		return nil, &ValidationError{Reason: "username or email is too long"}
	}
	if len(plaintext) > maxPasswordLen {
		return nil, &ValidationError{Reason: "password must be at most 72 bytes"}
	}

	// Pre-check so duplicates fail before the hashing cost is paid. The
	// store's unique email index stays the authority under races.
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateAccount
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// The record stays persisted if signing fails; the caller sees an
	// internal error, not a silent success.
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Result{Token: token, User: user.Public()}, nil
}

// CurrentUser returns the public view of the user a verified token asserted.
func (s *Service) CurrentUser(ctx context.Context, id string) (*models.PublicUser, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

// Login verifies credentials and returns a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*Result, error) {
	email = NormalizeEmail(email)
	if email == "" || strings.TrimSpace(plaintext) == "" {
		return nil, &ValidationError{Reason: "email and password are required"}
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	ok, err := s.hasher.Verify(plaintext, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Result{Token: token, User: user.Public()}, nil
}
