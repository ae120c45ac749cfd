package ai

import "errors"

// ErrNotConfigured indicates no AI provider/credential was provisioned.
// Enrichment is skipped; base classification still works.
var ErrNotConfigured = errors.New("ai enrichment not configured")

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")
