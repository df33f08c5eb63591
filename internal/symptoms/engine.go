package symptoms

import (
	"github.com/Skufu/vitalsense/internal/knowledge"
)

const Disclaimer = "Results come from rule matching against a static knowledge base and are not a medical diagnosis."

// MaxCandidates caps the ranked candidate list.
const MaxCandidates = 3

// VitalSigns is an optional snapshot. Nil fields were not measured.
// Temperature is in degrees Fahrenheit.
type VitalSigns struct {
	Systolic     *float64 `json:"systolic,omitempty"`
	Diastolic    *float64 `json:"diastolic,omitempty"`
	HeartRate    *float64 `json:"heartRate,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	BloodGlucose *float64 `json:"bloodGlucose,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`
}

type Candidate struct {
	Condition       string   `json:"condition"`
	Probability     float64  `json:"probability"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

type AnalysisResult struct {
	Candidates      []Candidate        `json:"candidates"`
	Risk            knowledge.RiskTier `json:"riskLevel"`
	Recommendations Recommendations    `json:"recommendations"`
	RelatedSymptoms []string           `json:"relatedSymptoms"`
	VitalFlags      []string           `json:"vitalFlags"`
	Disclaimer      string             `json:"disclaimer"`
}

// Leading returns the top candidate's name, or "".
func (r AnalysisResult) Leading() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0].Condition
}

// Engine runs analyses against one knowledge base. It holds no mutable
// state and may be shared between goroutines.
type Engine struct {
	kb *knowledge.Base
}

func NewEngine(kb *knowledge.Base) *Engine {
	return &Engine{kb: kb}
}

func (e *Engine) Knowledge() *knowledge.Base {
	return e.kb
}

// Analyze scores the reported symptoms, assesses risk and gathers advice.
func (e *Engine) Analyze(selected []string, vitals *VitalSigns) AnalysisResult {
	ids := Normalize(selected)

	candidates := e.Score(ids)
	risk := e.AssessRisk(candidates, vitals)

	return AnalysisResult{
		Candidates:      candidates,
		Risk:            risk,
		Recommendations: e.Recommend(candidates, risk),
		RelatedSymptoms: e.Related(ids),
		VitalFlags:      BreachedVitals(vitals),
		Disclaimer:      Disclaimer,
	}
}

// Normalize canonicalises identifiers and drops blanks and repeats,
// keeping first-seen order.
func Normalize(selected []string) []string {
	out := make([]string, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, s := range selected {
		id := knowledge.Canonical(s)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
