package numbers

// RiskLevel enum, ordered from harmless to emergency
type RiskLevel string

const (
	RiskSafe      RiskLevel = "safe"
	RiskCaution   RiskLevel = "caution"
	RiskDanger    RiskLevel = "danger"
	RiskEmergency RiskLevel = "emergency"
)

var riskRank = map[RiskLevel]int{
	RiskSafe:      0,
	RiskCaution:   1,
	RiskDanger:    2,
	RiskEmergency: 3,
}

// Escalate returns the more severe of the two levels. Within one evaluation
// risk only ever moves up.
func (r RiskLevel) Escalate(to RiskLevel) RiskLevel {
	if riskRank[to] > riskRank[r] {
		return to
	}
	return r
}

// Valid reports whether r is one of the known levels.
func (r RiskLevel) Valid() bool {
	_, ok := riskRank[r]
	return ok
}
