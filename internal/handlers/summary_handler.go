package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/AhmedHussainCodes/Mockrithm/internal/services"
)

type SummaryHandler struct {
	summaryService services.SummaryService
	presenter      *services.Presenter
}

func NewSummaryHandler(summaryService services.SummaryService, presenter *services.Presenter) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		presenter:      presenter,
	}
}

// HandleGetSummary handles GET /users/:userId/summary. Zero feedback is a
// valid state and yields an empty summary, never an error.
func (h *SummaryHandler) HandleGetSummary(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID format",
		})
	}

	summary, err := h.summaryService.GetCandidateSummary(userID)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(h.presenter.BuildSummaryResponse(summary))
}
