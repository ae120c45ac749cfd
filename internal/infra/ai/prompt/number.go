package prompt

import (
	"fmt"

	"github.com/Laevateinn0131/callguard/internal/domain/ai"
)

// NumberSystemPrompt gives strict directions and the schema for JSON output.
func NumberSystemPrompt() string {
	return `You are a phone fraud analyst. You must produce one valid JSON object only (no markdown, no commentary, no code fences).

Requirements:
- Output must be a single JSON object following the schema below.
- ai_risk_assessment must be one of: safe, caution, danger.
- confidence must be one of: high, medium, low.
- confidence_score is an integer 0-100.
- Keep list items short and concrete. Use empty arrays when nothing applies.

Schema (example with empty values):
{
  "caller_identification": {
    "most_likely": "<individual|business|financial institution|public agency|scam group|unknown>",
    "confidence": "<high|medium|low>",
    "reasoning": "<string>"
  },
  "business_type": "<string, e.g. mail-order sales, insurance sales, survey calls>",
  "ai_risk_assessment": "<safe|caution|danger>",
  "confidence_score": 0,
  "fraud_patterns": ["<string>"],
  "similar_cases": ["<string>"],
  "recommendations": ["<string>"],
  "conversation_warnings": ["<string>"],
  "summary": "<overall analysis, about 150 characters>"
}`
}

// NumberUserPrompt builds the user message around the number and its
// already-computed base classification.
func NumberUserPrompt(req ai.NumberRequest) string {
	area := req.Area
	if area == "" {
		area = "unknown"
	}
	return fmt.Sprintf(`Analyze this phone number and respond with the JSON per schema.

Phone number: %s
Normalized: %s
Number type: %s
Area: %s

Current rule-based verdict:
- Caller type: %s
- Category: %s
- Risk level: %s`,
		req.Number, req.Normalized, req.NumberType, area,
		req.CallerType, req.CallerCategory, req.Risk)
}
