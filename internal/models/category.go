package models

import (
	"fmt"
	"sort"
)

// The five evaluation dimensions every feedback record must score.
// The order here is the canonical display order.
const (
	CategoryCommunication  = "Communication Skills"
	CategoryTechnical      = "Technical Knowledge"
	CategoryProblemSolving = "Problem-Solving"
	CategoryCulturalFit    = "Cultural & Role Fit"
	CategoryConfidence     = "Confidence & Clarity"
)

var CategoryOrder = []string{
	CategoryCommunication,
	CategoryTechnical,
	CategoryProblemSolving,
	CategoryCulturalFit,
	CategoryConfidence,
}

const (
	MinCategoryScore = 0
	MaxCategoryScore = 100
)

// SchemaViolation reports a feedback object that does not satisfy the
// category contract, naming the offending category or field.
type SchemaViolation struct {
	Field  string
	Reason string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation: %s: %s", e.Field, e.Reason)
}

func categoryIndex(name string) int {
	for i, c := range CategoryOrder {
		if c == name {
			return i
		}
	}
	return -1
}

// ValidateCategoryScores checks that scores contains exactly one entry per
// category in the taxonomy, no unknown names, and every score within range.
// No coercion happens here: a missing category is an integrity violation,
// not an empty one.
func ValidateCategoryScores(scores []CategoryScore) error {
	seen := make(map[string]bool, len(CategoryOrder))

	for _, cs := range scores {
		if categoryIndex(cs.Name) < 0 {
			return &SchemaViolation{Field: cs.Name, Reason: "unknown category"}
		}
		if seen[cs.Name] {
			return &SchemaViolation{Field: cs.Name, Reason: "duplicated category"}
		}
		seen[cs.Name] = true

		if cs.Score < MinCategoryScore || cs.Score > MaxCategoryScore {
			return &SchemaViolation{
				Field:  cs.Name,
				Reason: fmt.Sprintf("score %d outside [%d,%d]", cs.Score, MinCategoryScore, MaxCategoryScore),
			}
		}
	}

	for _, name := range CategoryOrder {
		if !seen[name] {
			return &SchemaViolation{Field: name, Reason: "missing category"}
		}
	}

	return nil
}

// SortCategoryScores rearranges scores into taxonomy order in place.
// Callers must validate first; unknown names would sort to the front.
func SortCategoryScores(scores []CategoryScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return categoryIndex(scores[i].Name) < categoryIndex(scores[j].Name)
	})
}
