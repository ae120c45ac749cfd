package middleware

import (
	"fmt"
	"strings"
)

// Input validation and sanitization utilities

const (
	maxNumberLength     = 32
	maxTranscriptLength = 8000
	maxDescriptionLen   = 2000
)

// ValidatePhoneNumber checks that the input looks like a phone number: not
// empty, bounded length, digits plus common separators and a leading plus.
func ValidatePhoneNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("number cannot be empty")
	}
	if len(number) > maxNumberLength {
		return fmt.Errorf("number too long (max %d characters)", maxNumberLength)
	}
	for i, r := range number {
		switch {
		case r >= '0' && r <= '9':
		case r == '-' || r == ' ' || r == '(' || r == ')':
		case r == '+' && i == 0:
		default:
			return fmt.Errorf("invalid character in number: %q", r)
		}
	}
	return nil
}

// ValidateTranscript bounds a free-text conversation transcript.
func ValidateTranscript(transcript string) error {
	if strings.TrimSpace(transcript) == "" {
		return fmt.Errorf("transcript cannot be empty")
	}
	if len(transcript) > maxTranscriptLength {
		return fmt.Errorf("transcript too long (max %d bytes)", maxTranscriptLength)
	}
	return nil
}

// ValidateDescription bounds a report description. Empty is allowed.
func ValidateDescription(description string) error {
	if len(description) > maxDescriptionLen {
		return fmt.Errorf("description too long (max %d bytes)", maxDescriptionLen)
	}
	return nil
}

// SanitizeString removes null bytes and control characters.
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

// ValidateLimit clamps a pagination limit.
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
