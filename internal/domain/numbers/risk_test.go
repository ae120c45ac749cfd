package numbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskEscalateNeverDowngrades(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RiskCaution, RiskSafe.Escalate(RiskCaution))
	assert.Equal(t, RiskDanger, RiskCaution.Escalate(RiskDanger))
	assert.Equal(t, RiskDanger, RiskDanger.Escalate(RiskCaution))
	assert.Equal(t, RiskEmergency, RiskEmergency.Escalate(RiskSafe))
	assert.Equal(t, RiskDanger, RiskDanger.Escalate(RiskDanger))
}

func TestRiskValid(t *testing.T) {
	t.Parallel()

	for _, r := range []RiskLevel{RiskSafe, RiskCaution, RiskDanger, RiskEmergency} {
		assert.True(t, r.Valid())
	}
	assert.False(t, RiskLevel("severe").Valid())
}
