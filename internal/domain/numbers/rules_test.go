package numbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateEmergencyShortCircuits(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	for _, n := range []string{"110", "119", "118"} {
		ev := rs.Evaluate(n, nil)
		assert.Equal(t, RiskEmergency, ev.Risk)
		assert.Equal(t, "emergency number", ev.Caller.Type)
		assert.Empty(t, ev.Warnings, "emergency evaluation must skip the scam checks")
	}
}

func TestEvaluateKnownScamNumber(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	ev := rs.Evaluate("0120-999-999", nil)
	assert.Equal(t, RiskDanger, ev.Risk)
	assert.Contains(t, ev.Warnings, "known scam number")
}

func TestEvaluateSuspiciousPrefixFloorsAtCaution(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	ev := rs.Evaluate("050-1111-2222", nil)
	// this seed number is both a known scam and a suspicious 050 prefix;
	// danger must not be downgraded by the later caution rule
	assert.Equal(t, RiskDanger, ev.Risk)
	assert.Contains(t, ev.Warnings, "known scam number")
	assert.Equal(t, "IP-phone user", ev.Caller.Type)

	ev = rs.Evaluate("050-9999-0000", nil)
	assert.Equal(t, RiskCaution, ev.Risk)
	assert.Contains(t, ev.Warnings, "suspicious prefix: 050")
}

func TestEvaluateInternationalNumber(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	ev := rs.Evaluate("+1-876-555-1234", nil)
	assert.NotEqual(t, RiskSafe, ev.Risk)
	assert.Contains(t, ev.Warnings, "international call")
	assert.Contains(t, ev.Warnings, "suspicious prefix: +1876")
}

func TestEvaluateReportedCase(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	ev := rs.Evaluate("03-5555-6666", &ReportSummary{Count: 3, Description: "fake invoice call"})
	assert.Equal(t, RiskDanger, ev.Risk)
	assert.Contains(t, ev.Warnings, "reported by users 3 time(s)")
	assert.Contains(t, ev.Details, "report details: fake invoice call")
}

func TestEvaluateSafeNumber(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	ev := rs.Evaluate("03-5555-6666", nil)
	assert.Equal(t, RiskSafe, ev.Risk)
	assert.Empty(t, ev.Warnings)
	assert.Contains(t, ev.Details, "number type: landline")
	assert.Contains(t, ev.Details, "area: Tokyo")
	assert.Contains(t, ev.Recommendations, "no known issues detected")
}

func TestEvaluateDeterministic(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	first := rs.Evaluate("050-1111-2222", nil)
	for i := 0; i < 5; i++ {
		again := rs.Evaluate("050-1111-2222", nil)
		assert.Equal(t, first, again)
	}
}

func TestAddScamNumber(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	normalized, added := rs.AddScamNumber("044-123-4567")
	require.True(t, added)
	assert.Equal(t, "0441234567", normalized)

	_, added = rs.AddScamNumber("0441234567")
	assert.False(t, added, "second add of the same number must be a no-op")

	ev := rs.Evaluate("044-123-4567", nil)
	assert.Equal(t, RiskDanger, ev.Risk)

	snap := rs.Snapshot()
	assert.Contains(t, snap.ScamNumbers, "0441234567")
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleSet()

	snap := rs.Snapshot()
	assert.ElementsMatch(t,
		[]string{"0312345678", "0120999999", "05011112222", "09012345678"},
		snap.ScamNumbers)
	assert.Equal(t, []string{"050", "070", "+675", "+234", "+1876"}, snap.SuspiciousPrefixes)
	assert.Len(t, snap.WarningPatterns, 4)
	assert.Equal(t, []string{"110", "118", "119"}, snap.EmergencyNumbers)

	snap.ScamNumbers[0] = "tampered"
	assert.NotContains(t, rs.Snapshot().ScamNumbers, "tampered")
}
