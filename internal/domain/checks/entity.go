package checks

import (
	"time"

	"github.com/Laevateinn0131/callguard/internal/domain/ai"
	"github.com/Laevateinn0131/callguard/internal/domain/numbers"
)

// CheckID identifier type
type CheckID string

// Check is one analysis result. Created per check, appended to the history,
// never mutated afterwards.
type Check struct {
	ID              CheckID            `json:"id"`
	Input           string             `json:"input"`
	Normalized      string             `json:"normalized"`
	Risk            numbers.RiskLevel  `json:"risk_level"`
	Caller          numbers.CallerType `json:"caller_type"`
	Warnings        []string           `json:"warnings"`
	Details         []string           `json:"details"`
	Recommendations []string           `json:"recommendations"`
	Insight         *ai.NumberInsight  `json:"ai_analysis,omitempty"`
	CheckedAt       time.Time          `json:"checked_at"`
}

// Summary counts history entries per risk level.
type Summary struct {
	Total     int `json:"total"`
	Danger    int `json:"danger"`
	Caution   int `json:"caution"`
	Safe      int `json:"safe"`
	Emergency int `json:"emergency"`
}
