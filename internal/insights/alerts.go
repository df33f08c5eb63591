package insights

import (
	"fmt"
	"time"

	"github.com/Skufu/vitalsense/internal/knowledge"
)

const (
	AlertRiskIncreased  = "Your risk level has increased since your last check"
	AlertRepeatedHigh   = "Multiple high-risk events detected in your history"
	AlertUpwardTrend    = "Consistent upward trend in risk across your last three checks"
	WinterAdvice        = "Strengthen your immunity during winter: rest well, stay active and keep vaccinations current"
	seasonalAlertFormat = "Symptoms tend to peak in %s; plan preventive care ahead of time"
	persistentFormat    = "Persistent symptom: %s appears in at least half of your checks"
)

// conditionAdvice maps leading conditions to standing advice.
var conditionAdvice = map[string]string{
	"flu":          "Get a flu vaccine every autumn",
	"covid19":      "Stay up to date with COVID-19 boosters",
	"migraine":     "Keep a headache diary to identify migraine triggers",
	"hypertension": "Monitor your blood pressure at home and reduce salt intake",
	"diabetes":     "Schedule regular blood glucose screening",
	"allergies":    "Consider seeing an allergist about long-term allergy management",
	"anxiety":      "Consider regular sessions with a mental health professional",
	"heart_attack": "Keep regular cardiology follow-ups",
}

func personalized(history []Record, seasonal [12]int) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, r := range history {
		if r.Condition == "" || seen[r.Condition] {
			continue
		}
		seen[r.Condition] = true
		if advice, ok := conditionAdvice[r.Condition]; ok {
			out = append(out, advice)
		}
	}
	if seasonal[time.January-1] > 0 && seasonal[time.February-1] > 0 {
		out = append(out, WinterAdvice)
	}
	return out
}

// alerts evaluates every rule independently. trend holds the numeric risk
// of each record, newest first.
func alerts(history []Record, sets [][]string, seasonal [12]int, trend []int) []string {
	n := len(history)
	out := []string{}
	seen := make(map[string]bool)
	add := func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			out = append(out, msg)
		}
	}

	high := knowledge.RiskHigh.Severity()
	medium := knowledge.RiskMedium.Severity()

	if n >= 2 && trend[0] == high && trend[1] == medium {
		add(AlertRiskIncreased)
	}

	highCount := 0
	for _, sev := range trend {
		if sev == high {
			highCount++
		}
	}
	if highCount >= 2 {
		add(AlertRepeatedHigh)
	}

	// Oldest of the three first: trend[2] <= trend[1] <= trend[0].
	if n >= 3 && trend[0] > knowledge.RiskLow.Severity() &&
		trend[2] > 0 && trend[2] <= trend[1] && trend[1] <= trend[0] {
		add(AlertUpwardTrend)
	}

	for m, count := range seasonal {
		if float64(count) > float64(n)/3 {
			add(fmt.Sprintf(seasonalAlertFormat, time.Month(m+1)))
		}
	}

	if n > 2 {
		var order []string
		counts := make(map[string]int)
		for _, set := range sets {
			for _, s := range set {
				if _, ok := counts[s]; !ok {
					order = append(order, s)
				}
				counts[s]++
			}
		}
		for _, s := range order {
			if counts[s]*2 >= n {
				add(fmt.Sprintf(persistentFormat, knowledge.DisplayName(s)))
			}
		}
	}

	return out
}
