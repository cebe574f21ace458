package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
	"github.com/AhmedHussainCodes/Mockrithm/internal/repositories"
)

// Identity defaults when the user directory has no entry for the
// candidate. An absent user must never crash an evaluation.
const (
	DefaultCandidateName  = "Candidate"
	DefaultCandidateEmail = "candidate@example.com"
)

const defaultInterviewer = "AI Interviewer"

const evaluationTemperature = 0.3

type EvaluationRequest struct {
	InterviewID uuid.UUID
	UserID      uuid.UUID
	Transcript  []models.TranscriptTurn
}

// FeedbackEvaluator turns a transcript into a validated feedback record.
// The result is not persisted; the caller owns the write.
type FeedbackEvaluator interface {
	Evaluate(ctx context.Context, req EvaluationRequest) (*models.Feedback, error)
}

type feedbackEvaluator struct {
	userRepo      repositories.UserRepository
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewFeedbackEvaluator(
	userRepo repositories.UserRepository,
	gemini GeminiService,
) FeedbackEvaluator {
	return &feedbackEvaluator{
		userRepo:      userRepo,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// evaluationResult mirrors the JSON contract stated in the prompt. It is
// untrusted model output until Validate passes.
type evaluationResult struct {
	TotalScore          int                    `json:"totalScore"`
	CategoryScores      []models.CategoryScore `json:"categoryScores"`
	Strengths           []string               `json:"strengths"`
	AreasForImprovement []string               `json:"areasForImprovement"`
	FinalAssessment     string                 `json:"finalAssessment"`
}

func (e *feedbackEvaluator) Evaluate(ctx context.Context, req EvaluationRequest) (*models.Feedback, error) {
	if req.InterviewID == uuid.Nil || req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: interview and user ids are required", ErrInvalidInput)
	}
	if len(req.Transcript) == 0 {
		return nil, fmt.Errorf("%w: empty transcript", ErrInvalidInput)
	}

	candidateName, email, err := e.resolveIdentity(req.UserID)
	if err != nil {
		return nil, err
	}

	prompt := e.promptBuilder.BuildInterviewEvaluationPrompt(
		e.promptBuilder.FormatTranscript(req.Transcript),
	)

	response, err := e.gemini.GenerateJSONWithRetry(ctx, prompt, evaluationTemperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}

	var result evaluationResult
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}

	feedback := &models.Feedback{
		InterviewID:         req.InterviewID,
		UserID:              req.UserID,
		CandidateName:       candidateName,
		Email:               email,
		Interviewer:         defaultInterviewer,
		TotalScore:          result.TotalScore,
		CategoryScores:      result.CategoryScores,
		Strengths:           result.Strengths,
		AreasForImprovement: result.AreasForImprovement,
		FinalAssessment:     strings.TrimSpace(result.FinalAssessment),
		CreatedAt:           time.Now(),
	}

	// Never let a partially valid object out of the gateway.
	if err := feedback.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}

	models.SortCategoryScores(feedback.CategoryScores)

	return feedback, nil
}

func (e *feedbackEvaluator) resolveIdentity(userID uuid.UUID) (name, email string, err error) {
	user, err := e.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Debug().
				Str("user_id", userID.String()).
				Msg("user not in directory, using candidate defaults")
			return DefaultCandidateName, DefaultCandidateEmail, nil
		}
		return "", "", err
	}

	name, email = user.Name, user.Email
	if name == "" {
		name = DefaultCandidateName
	}
	if email == "" {
		email = DefaultCandidateEmail
	}
	return name, email, nil
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown
// or other formatting around it.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
