package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
	"github.com/AhmedHussainCodes/Mockrithm/internal/repositories"
)

// fakeFeedbackRepo serves a fixed record set, newest-first as the real
// repository would.
type fakeFeedbackRepo struct {
	records []models.Feedback
	listErr error
}

func (f *fakeFeedbackRepo) Create(feedback *models.Feedback) error { return nil }
func (f *fakeFeedbackRepo) Update(feedback *models.Feedback) error { return nil }
func (f *fakeFeedbackRepo) Delete(id uuid.UUID) error              { return nil }

func (f *fakeFeedbackRepo) FindByID(id uuid.UUID) (*models.Feedback, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeFeedbackRepo) FindByInterview(interviewID, userID uuid.UUID) (*models.Feedback, error) {
	for i := range f.records {
		if f.records[i].InterviewID == interviewID && f.records[i].UserID == userID {
			return &f.records[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeFeedbackRepo) ListByUser(userID uuid.UUID) ([]models.Feedback, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Feedback, 0, len(f.records))
	for _, fb := range f.records {
		if fb.UserID == userID {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) ListAll() ([]models.Feedback, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
	err   error
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrNotFound
}

// fakeGemini returns a canned response (or error) and records the prompt
// it was asked to answer.
type fakeGemini struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeGemini) GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error) {
	return f.GenerateJSONWithRetry(ctx, prompt, temperature)
}

func (f *fakeGemini) GenerateJSONWithRetry(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

var errBoom = errors.New("provider exploded")
