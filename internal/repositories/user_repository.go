package repositories

import "walletbook/internal/models"

// UserRepository defines user account database operations.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
}
