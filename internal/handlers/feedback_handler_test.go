package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
	"github.com/AhmedHussainCodes/Mockrithm/internal/repositories"
	"github.com/AhmedHussainCodes/Mockrithm/internal/services"
)

type memFeedbackRepo struct {
	byInterview map[uuid.UUID]*models.Feedback
	byID        map[uuid.UUID]*models.Feedback
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{
		byInterview: make(map[uuid.UUID]*models.Feedback),
		byID:        make(map[uuid.UUID]*models.Feedback),
	}
}

func (m *memFeedbackRepo) Create(feedback *models.Feedback) error {
	if _, exists := m.byInterview[feedback.InterviewID]; exists {
		return repositories.ErrDuplicateFeedback
	}
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	m.byInterview[feedback.InterviewID] = feedback
	m.byID[feedback.ID] = feedback
	return nil
}

func (m *memFeedbackRepo) Update(feedback *models.Feedback) error {
	if _, exists := m.byID[feedback.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.byID[feedback.ID] = feedback
	m.byInterview[feedback.InterviewID] = feedback
	return nil
}

func (m *memFeedbackRepo) FindByID(id uuid.UUID) (*models.Feedback, error) {
	if fb, ok := m.byID[id]; ok {
		return fb, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memFeedbackRepo) FindByInterview(interviewID, userID uuid.UUID) (*models.Feedback, error) {
	if fb, ok := m.byInterview[interviewID]; ok && fb.UserID == userID {
		return fb, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memFeedbackRepo) ListByUser(userID uuid.UUID) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, fb := range m.byInterview {
		if fb.UserID == userID {
			out = append(out, *fb)
		}
	}
	return out, nil
}

func (m *memFeedbackRepo) ListAll() ([]models.Feedback, error) {
	out := make([]models.Feedback, 0, len(m.byInterview))
	for _, fb := range m.byInterview {
		out = append(out, *fb)
	}
	return out, nil
}

func (m *memFeedbackRepo) Delete(id uuid.UUID) error {
	fb, ok := m.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	delete(m.byID, id)
	delete(m.byInterview, fb.InterviewID)
	return nil
}

type stubEvaluator struct {
	err error
}

func (s *stubEvaluator) Evaluate(ctx context.Context, req services.EvaluationRequest) (*models.Feedback, error) {
	if s.err != nil {
		return nil, s.err
	}

	scores := make([]models.CategoryScore, 0, len(models.CategoryOrder))
	for _, name := range models.CategoryOrder {
		scores = append(scores, models.CategoryScore{Name: name, Score: 85, Comment: "good"})
	}
	return &models.Feedback{
		InterviewID:     req.InterviewID,
		UserID:          req.UserID,
		CandidateName:   "Candidate",
		Email:           "candidate@example.com",
		Interviewer:     "AI Interviewer",
		TotalScore:      85,
		CategoryScores:  scores,
		Strengths:       []string{"clarity"},
		FinalAssessment: "strong",
		CreatedAt:       time.Now(),
	}, nil
}

func newTestApp(repo repositories.FeedbackRepository, evaluator services.FeedbackEvaluator) *fiber.App {
	handler := NewFeedbackHandler(repo, evaluator, services.NewPresenter(), validator.New(), 5*time.Second)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/feedback", handler.HandleCreateFeedback)
	api.Get("/feedback", handler.HandleGetFeedback)
	api.Get("/feedback/list", handler.HandleListFeedback)
	api.Delete("/feedback/:id", handler.HandleDeleteFeedback)
	return app
}

func postFeedback(t *testing.T, app *fiber.App, req models.CreateFeedbackRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(httpReq, -1)
	require.NoError(t, err)
	return resp
}

func validRequest() models.CreateFeedbackRequest {
	return models.CreateFeedbackRequest{
		InterviewID: uuid.NewString(),
		UserID:      uuid.NewString(),
		Transcript: []models.TranscriptTurn{
			{Role: "candidate", Content: "I build things."},
		},
	}
}

func TestHandleCreateFeedback_Success(t *testing.T) {
	app := newTestApp(newMemFeedbackRepo(), &stubEvaluator{})

	resp := postFeedback(t, app, validRequest())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out models.CreateFeedbackResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.FeedbackID)
	assert.Equal(t, 85, out.TotalScore)
}

func TestHandleCreateFeedback_SecondSubmissionConflicts(t *testing.T) {
	app := newTestApp(newMemFeedbackRepo(), &stubEvaluator{})
	req := validRequest()

	resp := postFeedback(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postFeedback(t, app, req)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandleCreateFeedback_ResubmissionWithFeedbackIDUpdates(t *testing.T) {
	repo := newMemFeedbackRepo()
	app := newTestApp(repo, &stubEvaluator{})
	req := validRequest()

	resp := postFeedback(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.CreateFeedbackResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	req.FeedbackID = created.FeedbackID
	resp = postFeedback(t, app, req)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	records, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "an explicit resubmission must not create a second record")
}

func TestHandleCreateFeedback_MissingTranscript(t *testing.T) {
	app := newTestApp(newMemFeedbackRepo(), &stubEvaluator{})

	req := validRequest()
	req.Transcript = nil
	resp := postFeedback(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreateFeedback_EvaluationFailure(t *testing.T) {
	app := newTestApp(newMemFeedbackRepo(), &stubEvaluator{
		err: fmt.Errorf("%w: provider down", services.ErrEvaluationFailed),
	})

	resp := postFeedback(t, app, validRequest())
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHandleGetFeedback_MissIsNullNotError(t *testing.T) {
	app := newTestApp(newMemFeedbackRepo(), &stubEvaluator{})

	url := fmt.Sprintf("/api/v1/feedback?interviewId=%s&userId=%s", uuid.NewString(), uuid.NewString())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Nil(t, body["feedback"])
}

func TestHandleGetFeedback_RoundTrip(t *testing.T) {
	repo := newMemFeedbackRepo()
	app := newTestApp(repo, &stubEvaluator{})
	req := validRequest()

	resp := postFeedback(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	url := fmt.Sprintf("/api/v1/feedback?interviewId=%s&userId=%s", req.InterviewID, req.UserID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Feedback *models.Feedback `json:"feedback"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Feedback)

	assert.Equal(t, req.InterviewID, body.Feedback.InterviewID.String())
	assert.Equal(t, req.UserID, body.Feedback.UserID.String())
	assert.Equal(t, 85, body.Feedback.TotalScore)
	assert.Len(t, body.Feedback.CategoryScores, len(models.CategoryOrder))
	assert.Equal(t, []string{"clarity"}, body.Feedback.Strengths)
}

func TestHandleListFeedback_Stats(t *testing.T) {
	app := newTestApp(newMemFeedbackRepo(), &stubEvaluator{})

	resp := postFeedback(t, app, validRequest())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	listResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/feedback/list?sort=highest", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var body models.FeedbackListResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, 85, body.AverageScore)
	assert.Equal(t, 1, body.HighPerformers)
}

func TestHandleDeleteFeedback_NotFound(t *testing.T) {
	app := newTestApp(newMemFeedbackRepo(), &stubEvaluator{})

	url := "/api/v1/feedback/" + uuid.NewString()
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, url, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
