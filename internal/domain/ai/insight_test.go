package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberInsightValidJSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"caller_identification": {"most_likely": "scam group", "confidence": "high", "reasoning": "IP prefix with report history"},
		"business_type": "none",
		"ai_risk_assessment": "danger",
		"confidence_score": 85,
		"fraud_patterns": ["fake invoice"],
		"recommendations": ["hang up"],
		"summary": "very likely a scam"
	}`
	in := ParseNumberInsight(raw)
	assert.Equal(t, "scam group", in.CallerIdentification.MostLikely)
	assert.Equal(t, VerdictDanger, in.RiskAssessment)
	assert.Equal(t, 85, in.ConfidenceScore)
	assert.Equal(t, []string{"fake invoice"}, in.FraudPatterns)
}

func TestParseNumberInsightFencedJSON(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"ai_risk_assessment\": \"caution\", \"confidence_score\": 40, \"summary\": \"unclear\"}\n```"
	in := ParseNumberInsight(raw)
	assert.Equal(t, VerdictCaution, in.RiskAssessment)
	assert.Equal(t, "unclear", in.Summary)
}

func TestParseNumberInsightFallback(t *testing.T) {
	t.Parallel()

	raw := "I am sorry, I cannot produce JSON today. " + strings.Repeat("x", 300)
	in := ParseNumberInsight(raw)
	assert.Equal(t, "unknown", in.CallerIdentification.MostLikely)
	assert.Equal(t, "unknown", in.RiskAssessment)
	assert.Equal(t, 0, in.ConfidenceScore)
	assert.LessOrEqual(t, len([]rune(in.Summary)), 200)
	assert.True(t, strings.HasPrefix(in.Summary, "I am sorry"))
}

func TestParseConversationInsightValidJSON(t *testing.T) {
	t.Parallel()

	raw := `{"scam_probability": 90, "fraud_type": "impersonation scam", "dangerous_keywords": ["cash card"], "should_report": true, "explanation": "classic pattern"}`
	in := ParseConversationInsight(raw)
	assert.Equal(t, 90, in.ScamProbability)
	assert.Equal(t, "impersonation scam", in.FraudType)
	assert.True(t, in.ShouldReport)
}

func TestParseConversationInsightFallback(t *testing.T) {
	t.Parallel()

	raw := strings.Repeat("not json ", 50)
	in := ParseConversationInsight(raw)
	assert.Equal(t, 0, in.ScamProbability)
	assert.False(t, in.ShouldReport)
	assert.LessOrEqual(t, len([]rune(in.Explanation)), 200)
	assert.NotEmpty(t, in.Explanation)
}
