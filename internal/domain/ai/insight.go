package ai

import (
	"encoding/json"
	"strings"
)

// Verdict values the number prompt instructs the model to use.
const (
	VerdictSafe    = "safe"
	VerdictCaution = "caution"
	VerdictDanger  = "danger"
)

// fallbackLimit caps how much raw model output survives a failed parse.
const fallbackLimit = 200

// CallerIdentification is the model's guess at who owns the number.
type CallerIdentification struct {
	MostLikely string `json:"most_likely"`
	Confidence string `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// NumberInsight is the enrichment payload attached to a check.
type NumberInsight struct {
	CallerIdentification CallerIdentification `json:"caller_identification"`
	BusinessType         string               `json:"business_type"`
	RiskAssessment       string               `json:"ai_risk_assessment"`
	ConfidenceScore      int                  `json:"confidence_score"`
	FraudPatterns        []string             `json:"fraud_patterns,omitempty"`
	SimilarCases         []string             `json:"similar_cases,omitempty"`
	Recommendations      []string             `json:"recommendations,omitempty"`
	ConversationWarnings []string             `json:"conversation_warnings,omitempty"`
	Summary              string               `json:"summary"`
}

// ConversationInsight is the verdict on a free-text call transcript.
type ConversationInsight struct {
	ScamProbability   int      `json:"scam_probability"`
	FraudType         string   `json:"fraud_type"`
	DangerousKeywords []string `json:"dangerous_keywords,omitempty"`
	ImmediateActions  []string `json:"immediate_actions,omitempty"`
	ShouldReport      bool     `json:"should_report"`
	Explanation       string   `json:"explanation"`
}

// ParseNumberInsight decodes a model response. A response that is not valid
// JSON degrades to a stub carrying the truncated raw text; it never fails.
func ParseNumberInsight(raw string) *NumberInsight {
	var in NumberInsight
	if err := json.Unmarshal([]byte(stripFences(raw)), &in); err != nil {
		return &NumberInsight{
			CallerIdentification: CallerIdentification{
				MostLikely: "unknown",
				Confidence: "low",
				Reasoning:  "analysis response was not valid JSON",
			},
			BusinessType:   "unknown",
			RiskAssessment: "unknown",
			Summary:        truncate(raw, fallbackLimit),
		}
	}
	return &in
}

// ParseConversationInsight decodes a transcript verdict with the same
// truncated-raw fallback.
func ParseConversationInsight(raw string) *ConversationInsight {
	var in ConversationInsight
	if err := json.Unmarshal([]byte(stripFences(raw)), &in); err != nil {
		return &ConversationInsight{Explanation: truncate(raw, fallbackLimit)}
	}
	return &in
}

// stripFences removes a markdown code fence some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n])
}
