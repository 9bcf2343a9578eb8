package user

import (
	"errors"
	"fmt"
	"time"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid user data")
	ErrEmailTaken   = errors.New("email already registered")
)

type Service interface {
	Register(input models.CreateUserInput) (*models.User, error)
	GetByID(id string) (*models.User, error)
	List() ([]models.User, error)
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Register(input models.CreateUserInput) (*models.User, error) {
	v := validation.New()
	v.Required("firstName", input.FirstName)
	v.Required("lastName", input.LastName)
	v.Email("email", input.Email)
	v.Check(len(input.Password) >= 8, "password", "must be at least 8 characters")
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, v.First())
	}

	if _, err := s.repo.GetByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      models.RoleUser,
		Birthday:  input.Birthday,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(user); err != nil {
		// A registration racing this one past the GetByEmail check loses
		// at the unique index; report it the same way.
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *service) GetByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) List() ([]models.User, error) {
	return s.repo.List()
}
