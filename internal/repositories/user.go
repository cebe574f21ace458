package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
)

// UserRepository is the user directory the evaluator resolves candidate
// identity from. A missing user is not a failure; the gateway substitutes
// explicit defaults.
type UserRepository interface {
	FindByID(id uuid.UUID) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
