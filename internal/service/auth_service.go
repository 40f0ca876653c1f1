package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskplanner/internal/model"
	"taskplanner/internal/repository"
)

// defaultCategories are seeded for every new account.
var defaultCategories = []model.Category{
	{Name: "Work", Color: "#667eea"},
	{Name: "Personal", Color: "#28a745"},
	{Name: "Shopping", Color: "#ffc107"},
	{Name: "Health", Color: "#dc3545"},
}

// AuthService handles registration, login and session lifecycle.
type AuthService struct {
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	sessions   *repository.SessionRepository
	sessionTTL time.Duration
}

func NewAuthService(users *repository.UserRepository, categories *repository.CategoryRepository, sessions *repository.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{users: users, categories: categories, sessions: sessions, sessionTTL: sessionTTL}
}

// Register creates a user with a bcrypt-hashed password and seeds the
// default categories. A taken username is a recoverable user-facing error.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	for _, cat := range defaultCategories {
		category := model.Category{UserID: user.ID, Name: cat.Name, Color: cat.Color}
		if err := s.categories.Create(ctx, &category); err != nil {
			return nil, err
		}
	}

	return &user, nil
}

// Login verifies credentials and issues an opaque session token expiring
// at now plus the configured TTL.
func (s *AuthService) Login(ctx context.Context, username, password string, now time.Time) (*model.Session, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Authenticate resolves a session token to a user id. Expired sessions
// are dropped on sight.
func (s *AuthService) Authenticate(ctx context.Context, token string, now time.Time) (uint, error) {
	if token == "" {
		return 0, ErrNotFound
	}
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("find session: %w", err)
	}
	if session.Expired(now) {
		_ = s.sessions.Delete(ctx, token)
		return 0, ErrNotFound
	}
	return session.UserID, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ToggleDarkMode flips the user's display flag and returns the new value.
func (s *AuthService) ToggleDarkMode(ctx context.Context, userID uint) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("find user: %w", err)
	}
	enabled := !user.DarkMode
	if err := s.users.SetDarkMode(ctx, userID, enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

// DeleteAccount removes the user together with all owned tasks,
// categories, tags and sessions.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	return s.users.Delete(ctx, userID)
}
