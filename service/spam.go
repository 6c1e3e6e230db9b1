package service

import (
	"math"
	"regexp"
	"strings"

	"soffit-quote/domain"
)

var spamKeywords = []string{"test", "spam", "fake", "bot"}

var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://`),
	regexp.MustCompile(`\b\d{10,}\b`),
	regexp.MustCompile(`[A-Z]{5,}`),
}

// SpamScore rates a submission between 0 and 1. Keywords are matched on the
// lower-cased name and notes; patterns on the text as typed.
func SpamScore(in domain.SubmissionInput) float64 {
	text := strings.Join([]string{in.FirstName, in.LastName, in.Notes}, " ")
	lower := strings.ToLower(text)

	score := 0.0
	for _, kw := range spamKeywords {
		if strings.Contains(lower, kw) {
			score += 0.4
		}
	}
	for _, re := range suspiciousPatterns {
		if re.MatchString(text) {
			score += 0.3
		}
	}

	if in.LinearFeet > 5000 || in.Overhang > 50 {
		score += 0.3
	}
	if in.TotalPrice < 200 || in.TotalPrice > 50000 {
		score += 0.2
	}

	return math.Min(score, 1)
}
