package services

import (
	"fmt"
	"strings"

	"github.com/AhmedHussainCodes/Mockrithm/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// FormatTranscript flattens the ordered transcript turns into the line
// format the evaluation prompt expects.
func (pb *PromptBuilder) FormatTranscript(transcript []models.TranscriptTurn) string {
	var sb strings.Builder
	for _, turn := range transcript {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", turn.Role, turn.Content))
	}
	return sb.String()
}

// BuildInterviewEvaluationPrompt creates the scoring prompt. The contract
// it states is exactly what the schema validator enforces afterwards: all
// five categories scored 0-100, zero with a named deficiency for
// non-answers or missing audio, nothing invented beyond the transcript.
func (pb *PromptBuilder) BuildInterviewEvaluationPrompt(formattedTranscript string) string {
	return fmt.Sprintf(`You are an AI interviewer evaluating a candidate's mock interview performance.

Strict Rules:
- Always evaluate across the 5 categories: %s.
- Scores must be from 0 to 100.
- If the candidate does not answer, says "I don't know", or the microphone is not connected (no audio detected), assign a score of 0 for the affected category and explicitly explain why (e.g., "No audio detected due to microphone issue").
- Do not invent or assume answers not present in the transcript.
- Be professional, direct, and constructive in feedback.

Evaluation Categories:
1. %s
2. %s
3. %s
4. %s
5. %s

Interview Transcript:
%s

Your Task:
For each category:
- Provide a numeric score (0-100).
- Provide a short but clear justification for the score, including what went wrong and how the candidate can improve.

Return your response in the following JSON format:
{
  "totalScore": <0-100, overall performance score>,
  "categoryScores": [
    {"name": "<category name exactly as listed>", "score": <0-100>, "comment": "<justification>"}
  ],
  "strengths": ["<short recurring strength themes>"],
  "areasForImprovement": ["<short recurring improvement themes>"],
  "finalAssessment": "<3-5 sentence overall assessment>"
}

Include one entry per category, using the category names exactly as listed above.`,
		strings.Join(models.CategoryOrder, ", "),
		models.CategoryCommunication,
		models.CategoryTechnical,
		models.CategoryProblemSolving,
		models.CategoryCulturalFit,
		models.CategoryConfidence,
		formattedTranscript,
	)
}
