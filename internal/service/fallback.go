package service

import (
	"strings"

	"ccc-smartassist/internal/models"
)

const (
	offlineAnswerPrefix = "(Offline Mode) Based on my records:\n\n"

	offlineEnrollmentReply = "(Offline Mode) To assist you with enrollment, are you a New Student, " +
		"Old Student, Transferee, or Returning Student? Please specify so I can check my records."

	offlineNoMatchReply = "(Offline Mode) I apologize, but I cannot connect to the server right now. " +
		"For accurate information, please contact the Registrar's Office directly or visit the school administration."
)

// minTokenLength filters stop-word-like tokens: anything this short carries
// no signal for keyword overlap.
const minTokenLength = 3

// OfflineFallback answers from the knowledge base by keyword overlap when the
// remote model is unreachable. Pure and deterministic: identical inputs always
// yield the identical answer text.
type OfflineFallback struct{}

func NewOfflineFallback() *OfflineFallback {
	return &OfflineFallback{}
}

// Answer scores every knowledge item against the query and returns the best
// item's answer with an explicit offline marker, or a canned reply when
// nothing matches.
func (f *OfflineFallback) Answer(query string, knowledgeBase []models.KnowledgeItem) string {
	lowerQuery := strings.ToLower(query)

	var tokens []string
	for _, t := range strings.Fields(lowerQuery) {
		if len(t) > minTokenLength {
			tokens = append(tokens, t)
		}
	}

	var bestMatch *models.KnowledgeItem
	maxScore := 0

	for i := range knowledgeBase {
		item := &knowledgeBase[i]
		lowerQuestion := strings.ToLower(item.Question)
		lowerAnswer := strings.ToLower(item.Answer)

		score := 0
		for _, token := range tokens {
			if strings.Contains(lowerQuestion, token) {
				score += 3
			}
			if strings.Contains(lowerAnswer, token) {
				score += 1
			}
		}

		// Strict inequality keeps the first-encountered item on ties.
		if score > maxScore {
			maxScore = score
			bestMatch = item
		}
	}

	if bestMatch != nil && maxScore > 0 {
		return offlineAnswerPrefix + bestMatch.Answer
	}

	if strings.Contains(lowerQuery, "enroll") || strings.Contains(lowerQuery, "admission") {
		return offlineEnrollmentReply
	}

	return offlineNoMatchReply
}
