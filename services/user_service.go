package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lcdc/selections-go/dto"
	"github.com/lcdc/selections-go/middleware"
	"github.com/lcdc/selections-go/models"
	"github.com/lcdc/selections-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) RegisterUser(input dto.CreateUserInput) (*models.User, error) {
	_, err := s.repos.User.FindByUsername(input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := models.UserRoleCustomer
	if input.Role != "" {
		role = models.UserRole(input.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	user := &models.User{
		UserID:    uuid.NewString(),
		Username:  input.Username,
		Password:  string(hashed),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
	}
	if err := s.repos.User.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) LoginUser(username, password string) (*models.User, string, error) {
	user, err := s.repos.User.FindByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user, 24*time.Hour)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) FindByUserID(userID string) (*models.User, error) {
	user, err := s.repos.User.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
