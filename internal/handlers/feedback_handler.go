package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
	"github.com/AhmedHussainCodes/Mockrithm/internal/repositories"
	"github.com/AhmedHussainCodes/Mockrithm/internal/services"
)

type FeedbackHandler struct {
	feedbackRepo repositories.FeedbackRepository
	evaluator    services.FeedbackEvaluator
	presenter    *services.Presenter
	validate     *validator.Validate
	timeout      time.Duration
}

func NewFeedbackHandler(
	feedbackRepo repositories.FeedbackRepository,
	evaluator services.FeedbackEvaluator,
	presenter *services.Presenter,
	validate *validator.Validate,
	timeout time.Duration,
) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
		evaluator:    evaluator,
		presenter:    presenter,
		validate:     validate,
		timeout:      timeout,
	}
}

// HandleCreateFeedback handles POST /feedback. The evaluation is awaited
// to completion before anything is persisted; a partially returned object
// never reaches the store.
func (h *FeedbackHandler) HandleCreateFeedback(c *fiber.Ctx) error {
	var req models.CreateFeedbackRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	interviewID, err := uuid.Parse(req.InterviewID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview_id format",
		})
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user_id format",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	feedback, err := h.evaluator.Evaluate(ctx, services.EvaluationRequest{
		InterviewID: interviewID,
		UserID:      userID,
		Transcript:  req.Transcript,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, services.ErrEvaluationFailed):
			log.Error().Err(err).Str("interview_id", req.InterviewID).Msg("evaluation failed")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Evaluation failed. Please try again.",
			})
		default:
			return storeError(c, err)
		}
	}

	// Resubmission with a known feedback id updates that record in place;
	// everything else is a create-or-reject against the uniqueness
	// constraint on interview_id.
	if req.FeedbackID != "" {
		feedbackID, err := uuid.Parse(req.FeedbackID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid feedback_id format",
			})
		}
		feedback.ID = feedbackID
		if err := h.feedbackRepo.Update(feedback); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Feedback not found",
				})
			}
			return storeError(c, err)
		}
	} else {
		if err := h.feedbackRepo.Create(feedback); err != nil {
			if errors.Is(err, repositories.ErrDuplicateFeedback) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "Feedback already exists for this interview",
				})
			}
			return storeError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateFeedbackResponse{
		FeedbackID: feedback.ID.String(),
		TotalScore: feedback.TotalScore,
	})
}

// HandleGetFeedback handles GET /feedback?interviewId=&userId=. A miss is
// an expected state, surfaced as a null result rather than an error.
func (h *FeedbackHandler) HandleGetFeedback(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Query("interviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interviewId format",
		})
	}
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid userId format",
		})
	}

	feedback, err := h.feedbackRepo.FindByInterview(interviewID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(fiber.Map{"feedback": nil})
		}
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"feedback": feedback})
}

// HandleListFeedback handles GET /feedback/list for administrative review.
func (h *FeedbackHandler) HandleListFeedback(c *fiber.Ctx) error {
	records, err := h.feedbackRepo.ListAll()
	if err != nil {
		return storeError(c, err)
	}

	filtered := h.presenter.FilterFeedback(records, services.ListFilter{
		Search: c.Query("search"),
		Tier:   c.Query("tier"),
	})
	h.presenter.SortFeedback(filtered, services.SortOrder(c.Query("sort", string(services.SortNewest))))

	return c.JSON(h.presenter.BuildListResponse(filtered))
}

// HandleDeleteFeedback handles DELETE /feedback/:id (administrative).
func (h *FeedbackHandler) HandleDeleteFeedback(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid feedback ID format",
		})
	}

	if err := h.feedbackRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Feedback not found",
			})
		}
		return storeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func storeError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Msg("store operation failed")
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "Storage temporarily unavailable",
	})
}
