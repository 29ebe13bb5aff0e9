package services

import (
	"golang.org/x/crypto/bcrypt"

	"stayhub-backend/domain"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

type UserService struct {
	Users      *repositories.UserRepository
	BcryptCost int
}

func NewUserService(users *repositories.UserRepository, bcryptCost int) *UserService {
	return &UserService{Users: users, BcryptCost: bcryptCost}
}

func (s *UserService) List() ([]models.User, error) {
	return s.Users.List()
}

// Get returns one user; non-privileged actors may only read
// themselves.
func (s *UserService) Get(id uint, actor models.User) (models.User, error) {
	if !actor.IsPrivileged() && actor.ID != id {
		return models.User{}, domain.ForbiddenError{Msg: "you may only view your own account"}
	}
	return s.Users.GetByID(id)
}

// Update applies a user patch. Profile fields are self-service; role
// changes need an admin and activation changes need manager or admin.
func (s *UserService) Update(id uint, patch models.UserPatch, actor models.User) (models.User, error) {
	if !actor.IsPrivileged() && actor.ID != id {
		return models.User{}, domain.ForbiddenError{Msg: "you may only modify your own account"}
	}
	if patch.Role != nil && actor.Role != models.RoleAdmin {
		return models.User{}, domain.ForbiddenError{Msg: "only an admin may change roles"}
	}
	if patch.IsActive != nil && !actor.IsPrivileged() {
		return models.User{}, domain.ForbiddenError{Msg: "only staff may change account status"}
	}

	user, err := s.Users.GetByID(id)
	if err != nil {
		return models.User{}, err
	}

	user = patch.Apply(user)
	if patch.Role != nil && !models.ValidRole(user.Role) {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "unknown role"}
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.BcryptCost)
		if err != nil {
			return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
		}
		user.PasswordHash = string(hash)
	}

	if err := s.Users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Delete removes an account. Route-level RBAC restricts this to
// admins; an admin still cannot delete their own account.
func (s *UserService) Delete(id uint, actor models.User) error {
	if actor.ID == id {
		return domain.ValidationError{Field: "id", Msg: "cannot delete your own account"}
	}
	return s.Users.Delete(id)
}
