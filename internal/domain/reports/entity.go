package reports

import "time"

// CaseID identifier type
type CaseID string

// Case aggregates every user report filed against one number. The first
// report creates it with a count of one; repeat reports increment the count
// and append their description.
type Case struct {
	ID              CaseID    `json:"id"`
	Number          string    `json:"number"` // normalized
	Description     string    `json:"description"`
	Category        string    `json:"category,omitempty"`
	Reports         int       `json:"reports"`
	FirstReportedAt time.Time `json:"first_reported_at"`
	LastReportedAt  time.Time `json:"last_reported_at"`
}
