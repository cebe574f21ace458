package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryScore is one scored evaluation dimension with its rationale.
type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Feedback is the structured scoring record produced for one completed
// interview. Created exactly once per interview, immutable afterwards
// except for administrative deletion.
type Feedback struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InterviewID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"interview_id"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CandidateName       string          `gorm:"type:text" json:"candidate_name"`
	Email               string          `gorm:"type:text" json:"email"`
	Interviewer         string          `gorm:"type:text" json:"interviewer"`
	TotalScore          int             `gorm:"not null" json:"total_score"`
	CategoryScores      []CategoryScore `gorm:"type:jsonb;serializer:json" json:"category_scores"`
	Strengths           []string        `gorm:"type:jsonb;serializer:json" json:"strengths"`
	AreasForImprovement []string        `gorm:"type:jsonb;serializer:json" json:"areas_for_improvement"`
	FinalAssessment     string          `gorm:"type:text" json:"final_assessment"`
	CreatedAt           time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Feedback) TableName() string {
	return "interview_feedback"
}

// Validate checks the full record against the category contract.
// totalScore is an independent aggregate produced by the evaluator; it is
// range-checked but never compared against the category mean.
func (f *Feedback) Validate() error {
	if f.TotalScore < MinCategoryScore || f.TotalScore > MaxCategoryScore {
		return &SchemaViolation{Field: "totalScore", Reason: "outside [0,100]"}
	}
	return ValidateCategoryScores(f.CategoryScores)
}
