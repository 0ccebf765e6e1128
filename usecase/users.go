package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrEmailTaken    = errors.New("email already exists")
	ErrUserNotFound  = errors.New("user not found")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService orchestrates signup, signin and token resolution. The notes
// store is only needed for the explicit delete-user cascade.
type UserService struct {
	UsersRepo repository.UsersStore
	NotesRepo repository.NotesStore
	Tokens    *services.TokenManager
}

// CreateUser registers a new user with a hashed password and a fresh id.
// Email uniqueness is decided by the store, not by a lookup here.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hashedPassword, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		UserID:    uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.UsersRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.TrackAuthAttempt("failure", "signup")
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.TrackAuthAttempt("success", "signup")
	return user, nil
}

// Authenticate verifies the credentials and issues a session token.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.TrackAuthAttempt("failure", "signin")
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !services.ComparePasswords(user.Password, password) {
		utils.TrackAuthAttempt("failure", "signin")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Generate(user.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	utils.TrackAuthAttempt("success", "signin")
	return user, token, nil
}

// GetUser loads a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// ResolveToken verifies a bearer token and loads the user it was issued
// for. Token failures pass through as the services sentinel errors; a user
// deleted after issuance resolves to ErrUserNotFound.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.Tokens.Validate(token)
	if err != nil {
		utils.TrackAuthAttempt("failure", "token")
		return nil, err
	}
	return s.GetUser(ctx, userID)
}

// DeleteUser removes the user and every note they own. The cascade is
// explicit: notes first, then the user record.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	deleted, err := s.NotesRepo.DeleteUserNotes(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user notes: %w", err)
	}
	if deleted > 0 {
		log.Printf("Deleted %d notes for user %s", deleted, userID)
	}

	if err := s.UsersRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
