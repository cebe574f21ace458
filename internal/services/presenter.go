package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
)

// Banding thresholds. The pass mark is a separate concern from the colour
// tiers and must stay independently tunable, hence two named constants.
const (
	HighPerformerThreshold = 80
	ReviewThreshold        = 60
	PassThreshold          = 70
)

const (
	TierHighPerformer = "high performer"
	TierReview        = "review"
	TierLow           = "low"
)

// CategoryDisplayMax is the five-point scale some screens render category
// scores on. The stored scale is 0-100 everywhere; this conversion exists
// only at the presentation boundary.
const CategoryDisplayMax = 5

type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortHighest SortOrder = "highest"
	SortLowest  SortOrder = "lowest"
)

type ListFilter struct {
	Search string
	Tier   string
}

// Presenter maps stored records into view shapes without mutating them.
type Presenter struct{}

func NewPresenter() *Presenter {
	return &Presenter{}
}

func ScoreTier(score int) string {
	switch {
	case score >= HighPerformerThreshold:
		return TierHighPerformer
	case score >= ReviewThreshold:
		return TierReview
	default:
		return TierLow
	}
}

func Passed(score int) bool {
	return score >= PassThreshold
}

// FivePointScale converts a canonical 0-100 score for screens that show
// categories out of five.
func FivePointScale(score int) float64 {
	return math.Round(float64(score)/100*CategoryDisplayMax*10) / 10
}

// FilterFeedback applies a case-insensitive substring search over the
// candidate name, email and interviewer fields, AND-composed with the
// tier filter when one is set.
func (p *Presenter) FilterFeedback(records []models.Feedback, filter ListFilter) []models.Feedback {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.Feedback, 0, len(records))

	for _, fb := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(fb.CandidateName), search) &&
			!strings.Contains(strings.ToLower(fb.Email), search) &&
			!strings.Contains(strings.ToLower(fb.Interviewer), search) {
			continue
		}
		if filter.Tier != "" && ScoreTier(fb.TotalScore) != filter.Tier {
			continue
		}
		out = append(out, fb)
	}

	return out
}

// SortFeedback orders records for administrative review. Unknown sort
// values fall back to newest-first.
func (p *Presenter) SortFeedback(records []models.Feedback, order SortOrder) {
	switch order {
	case SortOldest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		})
	case SortHighest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].TotalScore > records[j].TotalScore
		})
	case SortLowest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].TotalScore < records[j].TotalScore
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		})
	}
}

// BuildListResponse assembles the admin review payload: rows with their
// tier and pass flag plus the stat rollups the dashboard header shows.
func (p *Presenter) BuildListResponse(records []models.Feedback) models.FeedbackListResponse {
	items := make([]models.FeedbackListItem, 0, len(records))
	sum := 0
	high := 0

	for _, fb := range records {
		sum += fb.TotalScore
		if fb.TotalScore >= HighPerformerThreshold {
			high++
		}
		items = append(items, models.FeedbackListItem{
			ID:            fb.ID.String(),
			InterviewID:   fb.InterviewID.String(),
			UserID:        fb.UserID.String(),
			CandidateName: fb.CandidateName,
			Email:         fb.Email,
			Interviewer:   fb.Interviewer,
			TotalScore:    fb.TotalScore,
			Tier:          ScoreTier(fb.TotalScore),
			Passed:        Passed(fb.TotalScore),
			CreatedAt:     fb.CreatedAt,
		})
	}

	resp := models.FeedbackListResponse{
		Feedback:       items,
		Total:          len(items),
		HighPerformers: high,
	}
	if len(items) > 0 {
		resp.AverageScore = int(math.Round(float64(sum) / float64(len(items))))
	}

	return resp
}

// BuildSummaryResponse wraps a summary with its display string: "N/A"
// when no feedback exists, never a literal zero.
func (p *Presenter) BuildSummaryResponse(summary *models.CandidateSummary) models.SummaryResponse {
	display := "N/A"
	if summary.FeedbackCount > 0 {
		display = fmt.Sprintf("%d%%", summary.OverallAverage)
	}
	return models.SummaryResponse{
		CandidateSummary:      *summary,
		OverallAverageDisplay: display,
	}
}
