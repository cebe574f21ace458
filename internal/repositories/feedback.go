package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	Update(feedback *models.Feedback) error
	FindByID(id uuid.UUID) (*models.Feedback, error)
	FindByInterview(interviewID, userID uuid.UUID) (*models.Feedback, error)
	ListByUser(userID uuid.UUID) ([]models.Feedback, error)
	ListAll() ([]models.Feedback, error)
	Delete(id uuid.UUID) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create inserts a new record. The unique index on interview_id makes this
// a create-or-reject: a second write for the same interview surfaces as
// ErrDuplicateFeedback rather than a silent second document.
func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	if err := r.db.Create(feedback).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update rewrites an existing record in place. Used only when the caller
// explicitly targets a known feedback id on resubmission.
func (r *feedbackRepository) Update(feedback *models.Feedback) error {
	result := r.db.Model(&models.Feedback{}).
		Where("id = ?", feedback.ID).
		Updates(map[string]interface{}{
			"candidate_name":        feedback.CandidateName,
			"email":                 feedback.Email,
			"interviewer":           feedback.Interviewer,
			"total_score":           feedback.TotalScore,
			"category_scores":       feedback.CategoryScores,
			"strengths":             feedback.Strengths,
			"areas_for_improvement": feedback.AreasForImprovement,
			"final_assessment":      feedback.FinalAssessment,
		})

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *feedbackRepository) FindByID(id uuid.UUID) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.Where("id = ?", id).First(&feedback).Error; err != nil {
		return nil, translate(err)
	}
	return &feedback, nil
}

// FindByInterview is a point lookup on the (interviewId, userId) secondary
// key. At most one record is expected; more than one is tolerated for rows
// predating the uniqueness constraint and logged as an anomaly, with the
// newest row treated as current.
func (r *feedbackRepository) FindByInterview(interviewID, userID uuid.UUID) (*models.Feedback, error) {
	var records []models.Feedback
	err := r.db.
		Where("interview_id = ? AND user_id = ?", interviewID, userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, translate(err)
	}

	if len(records) == 0 {
		return nil, ErrNotFound
	}
	if len(records) > 1 {
		log.Warn().
			Str("interview_id", interviewID.String()).
			Int("count", len(records)).
			Msg("multiple feedback records for one interview, using newest")
	}

	return &records[0], nil
}

func (r *feedbackRepository) ListByUser(userID uuid.UUID) ([]models.Feedback, error) {
	var records []models.Feedback
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, translate(err)
	}
	return records, nil
}

func (r *feedbackRepository) ListAll() ([]models.Feedback, error) {
	var records []models.Feedback
	if err := r.db.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, translate(err)
	}
	return records, nil
}

func (r *feedbackRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Feedback{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete feedback %s: %w", id, ErrNotFound)
	}
	return nil
}
