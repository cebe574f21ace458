package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCategoryScores() []CategoryScore {
	scores := make([]CategoryScore, 0, len(CategoryOrder))
	for _, name := range CategoryOrder {
		scores = append(scores, CategoryScore{Name: name, Score: 75, Comment: "solid"})
	}
	return scores
}

func TestValidateCategoryScores_FullSet(t *testing.T) {
	assert.NoError(t, ValidateCategoryScores(fullCategoryScores()))
}

func TestValidateCategoryScores_MissingCategory(t *testing.T) {
	scores := fullCategoryScores()[:4]

	err := ValidateCategoryScores(scores)
	require.Error(t, err)

	var violation *SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, CategoryConfidence, violation.Field)
	assert.Equal(t, "missing category", violation.Reason)
}

func TestValidateCategoryScores_DuplicatedCategory(t *testing.T) {
	scores := fullCategoryScores()
	scores[4] = CategoryScore{Name: CategoryCommunication, Score: 50}

	err := ValidateCategoryScores(scores)
	require.Error(t, err)

	var violation *SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, CategoryCommunication, violation.Field)
	assert.Equal(t, "duplicated category", violation.Reason)
}

func TestValidateCategoryScores_UnknownCategory(t *testing.T) {
	scores := append(fullCategoryScores(), CategoryScore{Name: "Leadership", Score: 80})

	err := ValidateCategoryScores(scores)
	require.Error(t, err)

	var violation *SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "Leadership", violation.Field)
}

func TestValidateCategoryScores_ScoreOutOfRange(t *testing.T) {
	for _, score := range []int{-1, 101} {
		scores := fullCategoryScores()
		scores[2].Score = score

		err := ValidateCategoryScores(scores)
		require.Error(t, err, "score %d must be rejected", score)

		var violation *SchemaViolation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, CategoryProblemSolving, violation.Field)
	}
}

func TestValidateCategoryScores_BoundaryScoresAccepted(t *testing.T) {
	scores := fullCategoryScores()
	scores[0].Score = 0
	scores[1].Score = 100

	assert.NoError(t, ValidateCategoryScores(scores))
}

func TestSortCategoryScores_RestoresTaxonomyOrder(t *testing.T) {
	scores := []CategoryScore{
		{Name: CategoryConfidence, Score: 10},
		{Name: CategoryCommunication, Score: 20},
		{Name: CategoryCulturalFit, Score: 30},
		{Name: CategoryProblemSolving, Score: 40},
		{Name: CategoryTechnical, Score: 50},
	}

	SortCategoryScores(scores)

	for i, cs := range scores {
		assert.Equal(t, CategoryOrder[i], cs.Name)
	}
}

func TestFeedbackValidate_TotalScoreOutOfRange(t *testing.T) {
	feedback := &Feedback{
		TotalScore:     120,
		CategoryScores: fullCategoryScores(),
	}

	err := feedback.Validate()
	require.Error(t, err)

	var violation *SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "totalScore", violation.Field)
}

func TestFeedbackValidate_Valid(t *testing.T) {
	feedback := &Feedback{
		TotalScore:     80,
		CategoryScores: fullCategoryScores(),
	}

	assert.NoError(t, feedback.Validate())
}
