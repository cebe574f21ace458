package models

import "time"

type TranscriptTurn struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content"`
}

type CreateFeedbackRequest struct {
	InterviewID string           `json:"interview_id" validate:"required,uuid"`
	UserID      string           `json:"user_id" validate:"required,uuid"`
	FeedbackID  string           `json:"feedback_id,omitempty" validate:"omitempty,uuid"`
	Transcript  []TranscriptTurn `json:"transcript" validate:"required,min=1,dive"`
}

type CreateFeedbackResponse struct {
	FeedbackID string `json:"feedback_id"`
	TotalScore int    `json:"total_score"`
}

// FeedbackListItem is the admin review row: the stored record plus the
// presentation tier and pass flag derived from its total score.
type FeedbackListItem struct {
	ID            string    `json:"id"`
	InterviewID   string    `json:"interview_id"`
	UserID        string    `json:"user_id"`
	CandidateName string    `json:"candidate_name"`
	Email         string    `json:"email"`
	Interviewer   string    `json:"interviewer"`
	TotalScore    int       `json:"total_score"`
	Tier          string    `json:"tier"`
	Passed        bool      `json:"passed"`
	CreatedAt     time.Time `json:"created_at"`
}

type FeedbackListResponse struct {
	Feedback       []FeedbackListItem `json:"feedback"`
	Total          int                `json:"total"`
	AverageScore   int                `json:"average_score"`
	HighPerformers int                `json:"high_performers"`
}

// SummaryResponse wraps CandidateSummary with the display string for the
// overall average ("N/A" when no feedback exists, never 0).
type SummaryResponse struct {
	CandidateSummary
	OverallAverageDisplay string `json:"overall_average_display"`
}
