package services

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
	"github.com/AhmedHussainCodes/Mockrithm/internal/repositories"
)

// SummaryService computes CandidateSummary views. It never fails on
// partial data: malformed records are skipped and logged, and an empty
// record set yields an empty summary rather than an error.
type SummaryService interface {
	GetCandidateSummary(userID uuid.UUID) (*models.CandidateSummary, error)
}

type summaryService struct {
	feedbackRepo      repositories.FeedbackRepository
	recentAssessments int
	topThemes         int
}

func NewSummaryService(feedbackRepo repositories.FeedbackRepository, recentAssessments, topThemes int) SummaryService {
	return &summaryService{
		feedbackRepo:      feedbackRepo,
		recentAssessments: recentAssessments,
		topThemes:         topThemes,
	}
}

func (s *summaryService) GetCandidateSummary(userID uuid.UUID) (*models.CandidateSummary, error) {
	records, err := s.feedbackRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	// records arrive newest-first; keep only readable ones.
	included := records[:0:0]
	for _, fb := range records {
		if err := aggregatable(&fb); err != nil {
			log.Warn().
				Str("feedback_id", fb.ID.String()).
				Err(err).
				Msg("skipping malformed feedback record in summary")
			continue
		}
		included = append(included, fb)
	}

	summary := &models.CandidateSummary{
		UserID:                 userID,
		FeedbackCount:          len(included),
		PerCategoryAverage:     categoryAverages(included),
		OverallAverage:         overallAverage(included),
		TopStrengths:           rankThemes(included, strengthsOf, s.topThemes),
		TopAreasForImprovement: rankThemes(included, improvementsOf, s.topThemes),
		RecentAssessments:      recentAssessments(included, s.recentAssessments),
	}

	return summary, nil
}

// aggregatable is looser than the write-path schema check: a record
// missing categories still contributes the ones it has, but unknown or
// duplicated categories and out-of-range scores make the record
// unreadable.
func aggregatable(fb *models.Feedback) error {
	if fb.TotalScore < models.MinCategoryScore || fb.TotalScore > models.MaxCategoryScore {
		return &models.SchemaViolation{Field: "totalScore", Reason: "outside [0,100]"}
	}

	seen := make(map[string]bool, len(fb.CategoryScores))
	for _, cs := range fb.CategoryScores {
		known := false
		for _, name := range models.CategoryOrder {
			if cs.Name == name {
				known = true
				break
			}
		}
		if !known {
			return &models.SchemaViolation{Field: cs.Name, Reason: "unknown category"}
		}
		if seen[cs.Name] {
			return &models.SchemaViolation{Field: cs.Name, Reason: "duplicated category"}
		}
		seen[cs.Name] = true
		if cs.Score < models.MinCategoryScore || cs.Score > models.MaxCategoryScore {
			return &models.SchemaViolation{Field: cs.Name, Reason: "score outside [0,100]"}
		}
	}
	return nil
}

// categoryAverages divides by the count of records actually containing
// each category, not the total record count, so a category present in
// fewer records is still averaged correctly.
func categoryAverages(records []models.Feedback) []models.CategoryAverage {
	totals := make(map[string]int, len(models.CategoryOrder))
	counts := make(map[string]int, len(models.CategoryOrder))

	for _, fb := range records {
		for _, cs := range fb.CategoryScores {
			totals[cs.Name] += cs.Score
			counts[cs.Name]++
		}
	}

	averages := make([]models.CategoryAverage, 0, len(models.CategoryOrder))
	for _, name := range models.CategoryOrder {
		avg := models.CategoryAverage{Category: name, Count: counts[name]}
		if avg.Count > 0 {
			avg.Average = float64(totals[name]) / float64(avg.Count)
			avg.Rounded = int(math.Round(avg.Average))
		}
		averages = append(averages, avg)
	}

	return averages
}

func overallAverage(records []models.Feedback) int {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, fb := range records {
		sum += fb.TotalScore
	}
	return int(math.Round(float64(sum) / float64(len(records))))
}

func strengthsOf(fb *models.Feedback) []string    { return fb.Strengths }
func improvementsOf(fb *models.Feedback) []string { return fb.AreasForImprovement }

// rankThemes builds a frequency table over verbatim theme text and ranks
// by descending frequency, ties broken by first-seen order over the
// newest-first input. Exact string matching only.
func rankThemes(records []models.Feedback, themes func(*models.Feedback) []string, limit int) []models.ThemeCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, fb := range records {
		for _, theme := range themes(&fb) {
			if _, ok := counts[theme]; !ok {
				firstSeen[theme] = order
				order++
			}
			counts[theme]++
		}
	}

	ranked := make([]models.ThemeCount, 0, len(counts))
	for theme, count := range counts {
		ranked = append(ranked, models.ThemeCount{Theme: theme, Count: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Theme] < firstSeen[ranked[j].Theme]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func recentAssessments(records []models.Feedback, limit int) []models.AssessmentSnapshot {
	if len(records) > limit {
		records = records[:limit]
	}
	snapshots := make([]models.AssessmentSnapshot, 0, len(records))
	for _, fb := range records {
		snapshots = append(snapshots, models.AssessmentSnapshot{
			FeedbackID:      fb.ID,
			InterviewID:     fb.InterviewID,
			TotalScore:      fb.TotalScore,
			FinalAssessment: fb.FinalAssessment,
			CreatedAt:       fb.CreatedAt,
		})
	}
	return snapshots
}
