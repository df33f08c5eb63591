package symptoms

import (
	"sort"
)

// Score ranks the conditions indicated by ids. Each distinct symptom adds
// one point to every condition it indexes; probability is points over the
// number of symptoms. Equal probabilities keep first-seen order.
func (e *Engine) Score(ids []string) []Candidate {
	ids = Normalize(ids)
	if len(ids) == 0 {
		return []Candidate{}
	}

	var order []string
	scores := make(map[string]int)
	for _, s := range ids {
		for _, name := range e.kb.ConditionsFor(s) {
			if _, ok := scores[name]; !ok {
				order = append(order, name)
			}
			scores[name]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	if len(order) > MaxCandidates {
		order = order[:MaxCandidates]
	}

	total := float64(len(ids))
	out := make([]Candidate, 0, len(order))
	for _, name := range order {
		out = append(out, Candidate{
			Condition:       name,
			Probability:     float64(scores[name]) / total,
			Description:     e.kb.Description(name),
			Recommendations: e.kb.RecommendationsFor(name).Immediate,
		})
	}
	return out
}
