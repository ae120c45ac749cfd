package prompt

import "fmt"

// ConversationSystemPrompt directs the model to judge a call transcript.
func ConversationSystemPrompt() string {
	return `You are a scam-call detection expert. You must produce one valid JSON object only (no markdown, no commentary, no code fences).

Assess:
1. The probability this call is a scam (0-100).
2. The type of fraud scheme, if any.
3. Dangerous keywords appearing in the conversation.
4. Actions the callee should take right now.
5. Whether the call should be reported to the police.

Schema (example with empty values):
{
  "scam_probability": 0,
  "fraud_type": "<e.g. impersonation scam, fake invoice, none>",
  "dangerous_keywords": ["<string>"],
  "immediate_actions": ["<string>"],
  "should_report": false,
  "explanation": "<detailed explanation>"
}`
}

// ConversationUserPrompt wraps the raw transcript.
func ConversationUserPrompt(transcript string) string {
	return fmt.Sprintf("Analyze this call transcript and respond with the JSON per schema.\n\nTranscript:\n%s", transcript)
}
