package symptoms

// Related suggests symptoms that share a condition with any selected one.
// Every matched condition is considered, not only the ranked top three.
func (e *Engine) Related(selected []string) []string {
	ids := Normalize(selected)

	picked := make(map[string]bool, len(ids))
	for _, s := range ids {
		picked[s] = true
	}

	out := newOrderedSet()
	visited := make(map[string]bool)
	for _, s := range ids {
		for _, name := range e.kb.ConditionsFor(s) {
			if visited[name] {
				continue
			}
			visited[name] = true
			for _, other := range e.kb.SymptomsOf(name) {
				if !picked[other] {
					out.add(other)
				}
			}
		}
	}
	return out.items
}
