package symptoms

import (
	"github.com/Skufu/vitalsense/internal/knowledge"
)

const (
	SystolicLimit   = 140
	DiastolicLimit  = 90
	HeartRateHigh   = 100
	HeartRateLow    = 60
	FeverFahrenheit = 100.4
)

type vitalRule struct {
	Name     string
	Breached func(v *VitalSigns) bool
}

var vitalRules = []vitalRule{
	{Name: "Elevated systolic blood pressure", Breached: func(v *VitalSigns) bool {
		return above(v.Systolic, SystolicLimit)
	}},
	{Name: "Elevated diastolic blood pressure", Breached: func(v *VitalSigns) bool {
		return above(v.Diastolic, DiastolicLimit)
	}},
	{Name: "Tachycardia", Breached: func(v *VitalSigns) bool {
		return above(v.HeartRate, HeartRateHigh)
	}},
	{Name: "Bradycardia", Breached: func(v *VitalSigns) bool {
		return v.HeartRate != nil && *v.HeartRate < HeartRateLow
	}},
	{Name: "Fever", Breached: func(v *VitalSigns) bool {
		return above(v.Temperature, FeverFahrenheit)
	}},
}

func above(v *float64, limit float64) bool {
	return v != nil && *v > limit
}

// BreachedVitals names every vital threshold the snapshot crosses.
func BreachedVitals(v *VitalSigns) []string {
	flags := []string{}
	if v == nil {
		return flags
	}
	for _, rule := range vitalRules {
		if rule.Breached(v) {
			flags = append(flags, rule.Name)
		}
	}
	return flags
}

// AssessRisk is high when any candidate is high risk or any vital is out of
// range, medium when there is at least one candidate, and low otherwise.
func (e *Engine) AssessRisk(candidates []Candidate, vitals *VitalSigns) knowledge.RiskTier {
	for _, c := range candidates {
		if tier, ok := e.kb.Risk(c.Condition); ok && tier == knowledge.RiskHigh {
			return knowledge.RiskHigh
		}
	}
	if len(BreachedVitals(vitals)) > 0 {
		return knowledge.RiskHigh
	}
	if len(candidates) > 0 {
		return knowledge.RiskMedium
	}
	return knowledge.RiskLow
}
