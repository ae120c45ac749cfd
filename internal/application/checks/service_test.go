package checks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Laevateinn0131/callguard/internal/domain/ai"
	domain "github.com/Laevateinn0131/callguard/internal/domain/checks"
	"github.com/Laevateinn0131/callguard/internal/domain/numbers"
	domreports "github.com/Laevateinn0131/callguard/internal/domain/reports"
)

type fakeHistory struct {
	saved []*domain.Check
}

func (f *fakeHistory) Save(_ context.Context, c *domain.Check) error {
	f.saved = append(f.saved, c)
	return nil
}

func (f *fakeHistory) Get(_ context.Context, id domain.CheckID) (*domain.Check, error) {
	for _, c := range f.saved {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeHistory) Latest(_ context.Context, limit int) ([]*domain.Check, error) {
	if limit > len(f.saved) {
		limit = len(f.saved)
	}
	out := make([]*domain.Check, 0, limit)
	for i := len(f.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.saved[i])
	}
	return out, nil
}

func (f *fakeHistory) Summary(_ context.Context) (domain.Summary, error) {
	var s domain.Summary
	for _, c := range f.saved {
		s.Total++
		switch c.Risk {
		case numbers.RiskDanger:
			s.Danger++
		case numbers.RiskCaution:
			s.Caution++
		case numbers.RiskSafe:
			s.Safe++
		case numbers.RiskEmergency:
			s.Emergency++
		}
	}
	return s, nil
}

func (f *fakeHistory) Clear(_ context.Context) error {
	f.saved = nil
	return nil
}

type fakeCases struct {
	byNumber map[string]*domreports.Case
}

func (f *fakeCases) Save(_ context.Context, c *domreports.Case) error {
	if f.byNumber == nil {
		f.byNumber = make(map[string]*domreports.Case)
	}
	f.byNumber[c.Number] = c
	return nil
}

func (f *fakeCases) FindByNumber(_ context.Context, number string) (*domreports.Case, error) {
	if c, ok := f.byNumber[number]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCases) Recent(_ context.Context, _ int) ([]*domreports.Case, error) {
	return nil, nil
}

type fakeAI struct {
	numberInsight *ai.NumberInsight
	convInsight   *ai.ConversationInsight
	err           error
	calls         int
}

func (f *fakeAI) AnalyzeNumber(_ context.Context, _ ai.NumberRequest) (*ai.NumberInsight, error) {
	f.calls++
	return f.numberInsight, f.err
}

func (f *fakeAI) AnalyzeConversation(_ context.Context, _ string) (*ai.ConversationInsight, error) {
	f.calls++
	return f.convInsight, f.err
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newService(aiClient ai.Client) (*Service, *fakeHistory) {
	history := &fakeHistory{}
	svc := &Service{
		History: history,
		Reports: &fakeCases{},
		Rules:   numbers.DefaultRuleSet(),
		AI:      aiClient,
		Clock:   fixedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		Logger:  zap.NewNop(),
	}
	return svc, history
}

func TestCheckEmptyNumber(t *testing.T) {
	t.Parallel()
	svc, _ := newService(nil)

	_, err := svc.Check(context.Background(), CheckCommand{Number: "   "})
	assert.ErrorIs(t, err, ErrEmptyNumber)
}

func TestCheckAppendsToHistory(t *testing.T) {
	t.Parallel()
	svc, history := newService(nil)

	chk, err := svc.Check(context.Background(), CheckCommand{Number: "03-5555-6666"})
	require.NoError(t, err)
	assert.Equal(t, numbers.RiskSafe, chk.Risk)
	assert.NotEmpty(t, chk.ID)
	assert.Equal(t, svc.Clock.Now(), chk.CheckedAt)
	require.Len(t, history.saved, 1)
	assert.Same(t, chk, history.saved[0])
}

func TestCheckUsesReportedCase(t *testing.T) {
	t.Parallel()
	svc, _ := newService(nil)
	cases := svc.Reports.(*fakeCases)
	require.NoError(t, cases.Save(context.Background(), &domreports.Case{
		Number:      "0355556666",
		Description: "pushy sales call",
		Reports:     2,
	}))

	chk, err := svc.Check(context.Background(), CheckCommand{Number: "03-5555-6666"})
	require.NoError(t, err)
	assert.Equal(t, numbers.RiskDanger, chk.Risk)
	assert.Contains(t, chk.Warnings, "reported by users 2 time(s)")
}

func TestCheckEnrichmentEscalates(t *testing.T) {
	t.Parallel()
	client := &fakeAI{numberInsight: &ai.NumberInsight{
		RiskAssessment:  ai.VerdictDanger,
		ConfidenceScore: 90,
	}}
	svc, _ := newService(client)

	chk, err := svc.Check(context.Background(), CheckCommand{Number: "03-5555-6666", Enrich: true})
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, numbers.RiskDanger, chk.Risk)
	require.NotNil(t, chk.Insight)
	assert.Contains(t, chk.Warnings, "ai verdict: danger (confidence 90%)")
}

func TestCheckEnrichmentNeverDowngrades(t *testing.T) {
	t.Parallel()
	client := &fakeAI{numberInsight: &ai.NumberInsight{RiskAssessment: ai.VerdictSafe}}
	svc, _ := newService(client)

	chk, err := svc.Check(context.Background(), CheckCommand{Number: "0120-999-999", Enrich: true})
	require.NoError(t, err)
	assert.Equal(t, numbers.RiskDanger, chk.Risk)
}

func TestCheckEnrichmentFailureIsNonFatal(t *testing.T) {
	t.Parallel()
	client := &fakeAI{err: errors.New("upstream timeout")}
	svc, history := newService(client)

	chk, err := svc.Check(context.Background(), CheckCommand{Number: "03-5555-6666", Enrich: true})
	require.NoError(t, err)
	assert.Nil(t, chk.Insight)
	assert.Contains(t, chk.Warnings, "ai analysis unavailable: upstream timeout")
	assert.Len(t, history.saved, 1, "degraded result must still reach the history")
}

func TestCheckEnrichmentWithoutClientWarns(t *testing.T) {
	t.Parallel()
	svc, history := newService(nil)

	chk, err := svc.Check(context.Background(), CheckCommand{Number: "03-5555-6666", Enrich: true})
	require.NoError(t, err)
	assert.Nil(t, chk.Insight)
	assert.Equal(t, numbers.RiskSafe, chk.Risk)
	assert.Contains(t, chk.Warnings, "ai analysis unavailable: not configured")
	assert.Len(t, history.saved, 1, "unenriched result must still reach the history")
}

func TestCheckEmergencySkipsEnrichment(t *testing.T) {
	t.Parallel()
	client := &fakeAI{numberInsight: &ai.NumberInsight{RiskAssessment: ai.VerdictDanger}}
	svc, _ := newService(client)

	chk, err := svc.Check(context.Background(), CheckCommand{Number: "110", Enrich: true})
	require.NoError(t, err)
	assert.Equal(t, numbers.RiskEmergency, chk.Risk)
	assert.Zero(t, client.calls)
	assert.Nil(t, chk.Insight)
}

func TestStatsAndClear(t *testing.T) {
	t.Parallel()
	svc, _ := newService(nil)
	ctx := context.Background()

	for _, n := range []string{"110", "0120-999-999", "050-9999-0000", "03-5555-6666"} {
		_, err := svc.Check(ctx, CheckCommand{Number: n})
		require.NoError(t, err)
	}

	s, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Summary{Total: 4, Danger: 1, Caution: 1, Safe: 1, Emergency: 1}, s)

	require.NoError(t, svc.ClearHistory(ctx))
	s, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, s.Total)
}
