package insights

import (
	"sort"
	"time"

	"github.com/Skufu/vitalsense/internal/knowledge"
)

// Record is one past symptom check. Histories are ordered newest first.
type Record struct {
	Date      time.Time          `json:"date"`
	Symptoms  []string           `json:"symptoms"`
	Risk      knowledge.RiskTier `json:"riskLevel"`
	Condition string             `json:"condition,omitempty"`
}

type Pair struct {
	Symptoms [2]string `json:"symptoms"`
	Count    int       `json:"count"`
}

type Result struct {
	PatternDetected    bool     `json:"patternDetected"`
	PatternConfidence  float64  `json:"patternConfidence"`
	CommonCombinations []Pair   `json:"commonCombinations"`
	Seasonal           [12]int  `json:"seasonalPattern"`
	RiskTrend          []int    `json:"riskTrend"`
	Recommendations    []string `json:"recommendations"`
	Alerts             []string `json:"alerts"`
	Weekday            [7]int   `json:"dayOfWeek"`
	Records            int      `json:"records"`
}

// PatternPolicy decides the pattern flag for a history and reports how
// confident it is.
type PatternPolicy func(history []Record) (detected bool, confidence float64)

type Option func(*Analyzer)

func WithPatternPolicy(p PatternPolicy) Option {
	return func(a *Analyzer) {
		if p != nil {
			a.pattern = p
		}
	}
}

// Analyzer turns a history into insights. It is stateless after
// construction and safe for concurrent use.
type Analyzer struct {
	pattern PatternPolicy
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{pattern: FrequencyPolicy(5, 0.5)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze never fails. Records without a date are left out of the month
// and weekday buckets, records without symptoms add nothing to pair or
// persistence counts, and unknown risk levels show up as 0 in the trend.
func (a *Analyzer) Analyze(history []Record) Result {
	sets := make([][]string, len(history))
	for i, r := range history {
		sets[i] = symptomSet(r.Symptoms)
	}

	res := Result{
		Records:            len(history),
		CommonCombinations: commonPairs(sets, 3),
		RiskTrend:          make([]int, len(history)),
	}
	for i, r := range history {
		res.RiskTrend[i] = r.Risk.Severity()
		if r.Date.IsZero() {
			continue
		}
		res.Seasonal[r.Date.Month()-1]++
		res.Weekday[r.Date.Weekday()] += len(sets[i])
	}

	res.Recommendations = personalized(history, res.Seasonal)
	res.Alerts = alerts(history, sets, res.Seasonal, res.RiskTrend)
	res.PatternDetected, res.PatternConfidence = a.pattern(history)

	return res
}

// symptomSet canonicalises, dedupes and sorts one record's symptoms.
func symptomSet(symptoms []string) []string {
	seen := make(map[string]bool, len(symptoms))
	out := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		id := knowledge.Canonical(s)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// commonPairs tallies unordered pairs across records and keeps the top n
// that occur more than once. Ties keep first-encountered order.
func commonPairs(sets [][]string, n int) []Pair {
	var order [][2]string
	counts := make(map[[2]string]int)
	for _, set := range sets {
		for i := 0; i < len(set); i++ {
			for j := i + 1; j < len(set); j++ {
				key := [2]string{set[i], set[j]}
				if _, ok := counts[key]; !ok {
					order = append(order, key)
				}
				counts[key]++
			}
		}
	}

	pairs := []Pair{}
	for _, key := range order {
		if counts[key] > 1 {
			pairs = append(pairs, Pair{Symptoms: key, Count: counts[key]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

// FrequencyPolicy flags a pattern once the history is longer than
// minRecords and its most frequent symptom shows up in at least threshold
// of the records.
func FrequencyPolicy(minRecords int, threshold float64) PatternPolicy {
	return func(history []Record) (bool, float64) {
		if len(history) == 0 {
			return false, 0
		}
		confidence := float64(maxSymptomRecords(history)) / float64(len(history))
		return len(history) > minRecords && confidence >= threshold, confidence
	}
}

func maxSymptomRecords(history []Record) int {
	counts := make(map[string]int)
	best := 0
	for _, r := range history {
		for _, s := range symptomSet(r.Symptoms) {
			counts[s]++
			if counts[s] > best {
				best = counts[s]
			}
		}
	}
	return best
}
