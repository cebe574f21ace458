package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/AhmedHussainCodes/Mockrithm/internal/repositories"
)

type InterviewHandler struct {
	interviewRepo repositories.InterviewRepository
	latestLimit   int
}

func NewInterviewHandler(interviewRepo repositories.InterviewRepository, latestLimit int) *InterviewHandler {
	return &InterviewHandler{
		interviewRepo: interviewRepo,
		latestLimit:   latestLimit,
	}
}

// HandleGetInterview handles GET /interviews/:id.
func (h *InterviewHandler) HandleGetInterview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	interview, err := h.interviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Interview not found",
			})
		}
		return storeError(c, err)
	}

	return c.JSON(interview)
}

// HandleListUserInterviews handles GET /users/:userId/interviews.
func (h *InterviewHandler) HandleListUserInterviews(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID format",
		})
	}

	interviews, err := h.interviewRepo.ListByUser(userID)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"interviews": interviews})
}

// HandleListLatestInterviews handles GET /interviews/latest?userId=, the
// feed of other users' finalized interviews.
func (h *InterviewHandler) HandleListLatestInterviews(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid userId format",
		})
	}

	limit := h.latestLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	interviews, err := h.interviewRepo.ListLatestFinalized(userID, limit)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{"interviews": interviews})
}
