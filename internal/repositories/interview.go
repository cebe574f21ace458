package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
)

type InterviewRepository interface {
	FindByID(id uuid.UUID) (*models.Interview, error)
	ListByUser(userID uuid.UUID) ([]models.Interview, error)
	ListLatestFinalized(excludeUserID uuid.UUID, limit int) ([]models.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) FindByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("id = ?", id).First(&interview).Error; err != nil {
		return nil, translate(err)
	}
	return &interview, nil
}

func (r *interviewRepository) ListByUser(userID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return interviews, nil
}

// ListLatestFinalized returns the newest finalized interviews of other
// users, the feed the candidate browse page is built from.
func (r *interviewRepository) ListLatestFinalized(excludeUserID uuid.UUID, limit int) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Where("finalized = ? AND user_id <> ?", true, excludeUserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return interviews, nil
}
