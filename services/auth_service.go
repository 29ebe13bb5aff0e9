package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"stayhub-backend/domain"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

// ErrInvalidCredentials is returned for both unknown email and wrong
// password so login failures do not reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

type AuthService struct {
	Users      *repositories.UserRepository
	Tokens     TokenIssuer
	BcryptCost int
}

func NewAuthService(users *repositories.UserRepository, tokens TokenIssuer, bcryptCost int) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, BcryptCost: bcryptCost}
}

// Register creates a regular user account. Elevated roles are only
// assigned by an admin through the user update path.
func (s *AuthService) Register(in RegisterInput) (models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if _, err := s.Users.GetByUsername(in.Username); err == nil {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "username already taken"}
	} else if !domain.IsNotFound(err) {
		return models.User{}, err
	}
	if _, err := s.Users.GetByEmail(in.Email); err == nil {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	} else if !domain.IsNotFound(err) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.BcryptCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := s.Users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token
// together with the account.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", models.User{}, domain.ForbiddenError{Msg: "account is deactivated"}
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return token, user, nil
}
