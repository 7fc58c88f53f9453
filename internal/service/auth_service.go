package service

import (
	"fmt"

	"easymed-backend/internal/models"
	"easymed-backend/internal/repository"
	"easymed-backend/pkg/utils"
)

type AuthService struct {
	store repository.Store
}

func NewAuthService(store repository.Store) *AuthService {
	return &AuthService{store: store}
}

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Role        string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// AuthResponse carries the session token and the sanitized user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a user account and issues a session token.
func (s *AuthService) Register(input RegisterInput) (*AuthResponse, error) {
	if !models.ValidRole(input.Role) {
		return nil, validationErrorf(fmt.Sprintf("invalid role %q", input.Role))
	}

	if _, err := s.store.GetUserByEmail(input.Email); err == nil {
		return nil, validationErrorf("email already registered")
	}
	if _, err := s.store.GetUserByUsername(input.Username); err == nil {
		return nil, validationErrorf("username already taken")
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		IsActive:     true,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	_ = s.store.CreateAuditLog(&user.ID, "user_register", fmt.Sprintf("User %s registered as %s", user.Email, user.Role))

	return &AuthResponse{Token: token, User: user}, nil
}

// Login authenticates by email and password and issues a session
// token. Failures are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*AuthResponse, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	_ = s.store.CreateAuditLog(&user.ID, "user_login", fmt.Sprintf("User %s logged in", user.Email))

	return &AuthResponse{Token: token, User: user}, nil
}

// GetProfile returns the user behind an authenticated session.
func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	return s.store.GetUser(userID)
}
