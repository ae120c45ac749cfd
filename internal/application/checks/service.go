package checks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Laevateinn0131/callguard/internal/application"
	"github.com/Laevateinn0131/callguard/internal/domain/ai"
	domain "github.com/Laevateinn0131/callguard/internal/domain/checks"
	"github.com/Laevateinn0131/callguard/internal/domain/numbers"
	domreports "github.com/Laevateinn0131/callguard/internal/domain/reports"
)

// ErrEmptyNumber rejects a check with no number to analyze.
var ErrEmptyNumber = errors.New("number is required")

// Service implements the number-check use cases. AI may be nil, in which
// case every check runs unenriched.
type Service struct {
	History domain.Repository
	Reports domreports.Repository
	Rules   *numbers.RuleSet
	AI      ai.Client
	Clock   application.Clock
	Logger  *zap.Logger
}

// CheckCommand is one user-initiated number check.
type CheckCommand struct {
	Number string
	Enrich bool
}

// Check runs the rule tables over the number, optionally enriches the result
// through the AI port, and appends the outcome to the history. Enrichment
// failures degrade to a warning on the result; they never fail the check.
func (s *Service) Check(ctx context.Context, cmd CheckCommand) (*domain.Check, error) {
	number := strings.TrimSpace(cmd.Number)
	if number == "" {
		return nil, ErrEmptyNumber
	}

	var reported *numbers.ReportSummary
	rc, err := s.Reports.FindByNumber(ctx, numbers.Normalize(number))
	switch {
	case err == nil:
		reported = &numbers.ReportSummary{Count: rc.Reports, Description: rc.Description}
	case errors.Is(err, sql.ErrNoRows):
		// nothing reported for this number
	default:
		return nil, err
	}

	ev := s.Rules.Evaluate(number, reported)

	chk := &domain.Check{
		ID:              domain.CheckID(uuid.New().String()),
		Input:           ev.Input,
		Normalized:      ev.Normalized,
		Risk:            ev.Risk,
		Caller:          ev.Caller,
		Warnings:        ev.Warnings,
		Details:         ev.Details,
		Recommendations: ev.Recommendations,
		CheckedAt:       s.Clock.Now(),
	}

	if cmd.Enrich && ev.Risk != numbers.RiskEmergency {
		if s.AI == nil {
			chk.Warnings = append(chk.Warnings, "ai analysis unavailable: not configured")
		} else {
			s.enrich(ctx, chk)
		}
	}

	if err := s.History.Save(ctx, chk); err != nil {
		return nil, err
	}
	return chk, nil
}

func (s *Service) enrich(ctx context.Context, chk *domain.Check) {
	insight, err := s.AI.AnalyzeNumber(ctx, ai.NumberRequest{
		Number:         chk.Input,
		Normalized:     chk.Normalized,
		NumberType:     numbers.NumberType(chk.Normalized),
		Area:           numbers.Area(chk.Normalized),
		CallerType:     chk.Caller.Type,
		CallerCategory: chk.Caller.Category,
		Risk:           string(chk.Risk),
	})
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("ai enrichment failed",
				zap.String("number", chk.Normalized),
				zap.Error(err))
		}
		chk.Warnings = append(chk.Warnings, "ai analysis unavailable: "+err.Error())
		return
	}

	chk.Insight = insight
	if insight.RiskAssessment == ai.VerdictDanger {
		if chk.Risk != numbers.RiskDanger {
			chk.Warnings = append(chk.Warnings,
				fmt.Sprintf("ai verdict: danger (confidence %d%%)", insight.ConfidenceScore))
		}
		chk.Risk = chk.Risk.Escalate(numbers.RiskDanger)
	}
}

// Enriches reports whether an AI client is wired in.
func (s *Service) Enriches() bool {
	return s.AI != nil
}

// Get fetches one check from the history.
func (s *Service) Get(ctx context.Context, id domain.CheckID) (*domain.Check, error) {
	return s.History.Get(ctx, id)
}

// Latest returns the N most recent checks.
func (s *Service) Latest(ctx context.Context, limit int) ([]*domain.Check, error) {
	return s.History.Latest(ctx, limit)
}

// Stats aggregates the history per risk level.
func (s *Service) Stats(ctx context.Context) (domain.Summary, error) {
	return s.History.Summary(ctx)
}

// ClearHistory wipes the check history.
func (s *Service) ClearHistory(ctx context.Context) error {
	return s.History.Clear(ctx)
}
