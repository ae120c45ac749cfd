package numbers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// ReportSummary carries what evaluation needs to know about prior user
// reports for a number.
type ReportSummary struct {
	Count       int
	Description string
}

// RuleSet is the process-lifetime scam database: known scam numbers,
// suspicious prefixes and warning patterns, evaluated as ordered
// first-match tables. Manual additions mutate it, so reads take the lock.
type RuleSet struct {
	mu                 sync.RWMutex
	scamNumbers        map[string]struct{}
	suspiciousPrefixes []string
	warningPatterns    []*regexp.Regexp
}

// DefaultRuleSet seeds the tables with the stock entries. All numbers and
// prefixes are stored in normalized form.
func DefaultRuleSet() *RuleSet {
	rs := &RuleSet{
		scamNumbers: map[string]struct{}{
			"0312345678":  {},
			"0120999999":  {},
			"05011112222": {},
			"09012345678": {},
		},
		suspiciousPrefixes: []string{"050", "070", "+675", "+234", "+1876"},
		warningPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^0120`),
			regexp.MustCompile(`^0570`),
			regexp.MustCompile(`^0990`),
			regexp.MustCompile(`^\+`),
		},
	}
	return rs
}

// AddScamNumber records a number as a known scam source. Returns false when
// the number (after normalization) is already present.
func (rs *RuleSet) AddScamNumber(raw string) (string, bool) {
	normalized := Normalize(strings.TrimSpace(raw))
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if _, ok := rs.scamNumbers[normalized]; ok {
		return normalized, false
	}
	rs.scamNumbers[normalized] = struct{}{}
	return normalized, true
}

// Snapshot is a read-only copy of the rule tables for the database view.
type Snapshot struct {
	ScamNumbers        []string `json:"known_scam_numbers"`
	SuspiciousPrefixes []string `json:"suspicious_prefixes"`
	WarningPatterns    []string `json:"warning_patterns"`
	EmergencyNumbers   []string `json:"emergency_numbers"`
}

// Snapshot copies the current tables. Scam numbers come back sorted so the
// view is stable.
func (rs *RuleSet) Snapshot() Snapshot {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	snap := Snapshot{
		SuspiciousPrefixes: append([]string(nil), rs.suspiciousPrefixes...),
		EmergencyNumbers:   EmergencyNumbers(),
	}
	for n := range rs.scamNumbers {
		snap.ScamNumbers = append(snap.ScamNumbers, n)
	}
	sort.Strings(snap.ScamNumbers)
	for _, re := range rs.warningPatterns {
		snap.WarningPatterns = append(snap.WarningPatterns, re.String())
	}
	return snap
}

// Evaluation is the outcome of running one number through the rule tables.
type Evaluation struct {
	Input           string
	Normalized      string
	Risk            RiskLevel
	Caller          CallerType
	Warnings        []string
	Details         []string
	Recommendations []string
}

// Evaluate runs the ordered rule chain over one number: emergency match,
// known scam list, reported cases, suspicious prefixes, warning patterns,
// international format. Risk escalates monotonically and never downgrades;
// an emergency match short-circuits everything else.
func (rs *RuleSet) Evaluate(input string, reported *ReportSummary) Evaluation {
	normalized := Normalize(strings.TrimSpace(input))
	ev := Evaluation{
		Input:      strings.TrimSpace(input),
		Normalized: normalized,
		Risk:       RiskSafe,
		Caller:     ClassifyCaller(normalized),
	}

	if IsEmergency(normalized) {
		ev.Risk = RiskEmergency
		ev.Details = append(ev.Details, "emergency dispatch number")
		return ev
	}

	rs.mu.RLock()
	defer rs.mu.RUnlock()

	if _, ok := rs.scamNumbers[normalized]; ok {
		ev.Risk = ev.Risk.Escalate(RiskDanger)
		ev.Warnings = append(ev.Warnings, "known scam number")
		ev.Recommendations = append(ev.Recommendations,
			"do not answer this number",
			"add it to your blocklist")
	}

	if reported != nil && reported.Count > 0 {
		ev.Risk = ev.Risk.Escalate(RiskDanger)
		ev.Warnings = append(ev.Warnings,
			fmt.Sprintf("reported by users %d time(s)", reported.Count))
		if reported.Description != "" {
			ev.Details = append(ev.Details, "report details: "+reported.Description)
		}
	}

	for _, prefix := range rs.suspiciousPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			ev.Risk = ev.Risk.Escalate(RiskCaution)
			ev.Warnings = append(ev.Warnings, "suspicious prefix: "+prefix)
			ev.Recommendations = append(ev.Recommendations, "answer with caution")
		}
	}

	for _, re := range rs.warningPatterns {
		if re.MatchString(normalized) {
			ev.Risk = ev.Risk.Escalate(RiskCaution)
			ev.Warnings = append(ev.Warnings, "matches warning pattern "+re.String())
		}
	}

	if strings.HasPrefix(normalized, "+") || strings.HasPrefix(normalized, "010") {
		ev.Risk = ev.Risk.Escalate(RiskCaution)
		ev.Warnings = append(ev.Warnings, "international call")
		ev.Recommendations = append(ev.Recommendations,
			"do not answer unless you expect a call from overseas")
	}

	ev.Details = append(ev.Details, "number type: "+NumberType(normalized))
	if area := Area(normalized); area != "" {
		ev.Details = append(ev.Details, "area: "+area)
	}

	if ev.Risk == RiskSafe {
		ev.Recommendations = append(ev.Recommendations,
			"no known issues detected",
			"stay alert for unusual requests")
	}
	return ev
}
