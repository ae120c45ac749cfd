package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Laevateinn0131/callguard/internal/application"
	"github.com/Laevateinn0131/callguard/internal/domain/numbers"
	domain "github.com/Laevateinn0131/callguard/internal/domain/reports"
)

// ErrEmptyNumber rejects a report with no number. Beyond presence the number
// format is not validated.
var ErrEmptyNumber = errors.New("number is required")

// Service implements report intake.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

// SubmitCommand is one user report.
type SubmitCommand struct {
	Number      string
	Description string
	Category    string
}

// Submit files a report. The first report for a number creates a case with a
// count of one; a repeat report increments the count and appends the new
// description to the case.
func (s *Service) Submit(ctx context.Context, cmd SubmitCommand) (*domain.Case, error) {
	number := strings.TrimSpace(cmd.Number)
	if number == "" {
		return nil, ErrEmptyNumber
	}
	normalized := numbers.Normalize(number)
	now := s.Clock.Now()

	existing, err := s.Repo.FindByNumber(ctx, normalized)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if existing == nil {
		entry := cmd.Description
		if cmd.Category != "" {
			entry = fmt.Sprintf("[%s] %s", cmd.Category, cmd.Description)
		}
		c := &domain.Case{
			ID:              domain.CaseID(uuid.New().String()),
			Number:          normalized,
			Description:     entry,
			Category:        cmd.Category,
			Reports:         1,
			FirstReportedAt: now,
			LastReportedAt:  now,
		}
		if err := s.Repo.Save(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}

	existing.Reports++
	existing.Description += fmt.Sprintf("\n[repeat report %d] %s", existing.Reports, cmd.Description)
	existing.LastReportedAt = now
	if cmd.Category != "" {
		existing.Category = cmd.Category
	}
	if err := s.Repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Recent lists the latest reported cases.
func (s *Service) Recent(ctx context.Context, limit int) ([]*domain.Case, error) {
	return s.Repo.Recent(ctx, limit)
}
