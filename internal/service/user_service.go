package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository"
)

type UserService interface {
	CreateUser(user *model.User) error
	GetUserByID(id string) (*model.User, error)
	UserExists(id string) (bool, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(user *model.User) error {
	if user.Username == "" || user.Email == "" {
		return errors.New("username and email are required")
	}

	existing, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return errors.New("email already in use")
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.userRepo.CreateUser(user)
}

func (s *userService) GetUserByID(id string) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UserExists(id string) (bool, error) {
	return s.userRepo.UserExists(id)
}
