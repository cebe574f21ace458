package models

import (
	"time"

	"github.com/google/uuid"
)

// CandidateSummary is the derived, non-persisted aggregate over one user's
// feedback records. It is recomputed on every read, so it can never go
// stale independently of the underlying records.
type CandidateSummary struct {
	UserID                 uuid.UUID            `json:"user_id"`
	FeedbackCount          int                  `json:"feedback_count"`
	PerCategoryAverage     []CategoryAverage    `json:"per_category_average"`
	OverallAverage         int                  `json:"overall_average"`
	TopStrengths           []ThemeCount         `json:"top_strengths"`
	TopAreasForImprovement []ThemeCount         `json:"top_areas_for_improvement"`
	RecentAssessments      []AssessmentSnapshot `json:"recent_assessments"`
}

// CategoryAverage keeps both the unrounded mean for further computation and
// the integer the dashboards display.
type CategoryAverage struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Rounded  int     `json:"rounded"`
	Count    int     `json:"count"`
}

// ThemeCount is one verbatim strength/improvement theme with how often it
// recurred across the user's feedback.
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

type AssessmentSnapshot struct {
	FeedbackID      uuid.UUID `json:"feedback_id"`
	InterviewID     uuid.UUID `json:"interview_id"`
	TotalScore      int       `json:"total_score"`
	FinalAssessment string    `json:"final_assessment"`
	CreatedAt       time.Time `json:"created_at"`
}
