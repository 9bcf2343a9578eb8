package auth

import (
	"errors"
	"log"

	"walletbook/internal/models"
	"walletbook/internal/repositories"
	"walletbook/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Login(email, password string) (*models.User, string, string, error)
	Refresh(refreshToken string) (string, string, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Login(email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		log.Printf("login failed: no user for %s", email)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: wrong password for user %s", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, "", "", errors.New("error generating tokens")
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) Refresh(refreshToken string) (string, string, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", errors.New("user not found")
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}
