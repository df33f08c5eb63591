package symptoms

import (
	"github.com/Skufu/vitalsense/internal/knowledge"
)

// orderedSet appends unseen strings and keeps insertion order.
type orderedSet struct {
	items []string
	seen  map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{items: []string{}, seen: make(map[string]bool)}
}

func (s *orderedSet) add(values ...string) {
	for _, v := range values {
		if s.seen[v] {
			continue
		}
		s.seen[v] = true
		s.items = append(s.items, v)
	}
}

// Recommend merges the tiers of the candidates in rank order.
func (e *Engine) Recommend(candidates []Candidate, risk knowledge.RiskTier) Recommendations {
	immediate, shortTerm, longTerm := newOrderedSet(), newOrderedSet(), newOrderedSet()

	for _, c := range candidates {
		recs := e.kb.RecommendationsFor(c.Condition)
		immediate.add(recs.Immediate...)
		shortTerm.add(recs.ShortTerm...)
		longTerm.add(recs.LongTerm...)
	}
	if risk == knowledge.RiskHigh {
		immediate.add(knowledge.SeekCareNow)
	}

	return Recommendations{
		Immediate: immediate.items,
		ShortTerm: shortTerm.items,
		LongTerm:  longTerm.items,
	}
}
