package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// UserService handles plain account CRUD.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateUser updates an existing user.
func (s *UserService) UpdateUser(user *models.User) error {
	return s.repo.Update(user)
}

// DeleteUser deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}
