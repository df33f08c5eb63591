package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

var ErrUnknownCondition = errors.New("unknown condition")

// Severity maps a tier to 1..3. Anything else is 0.
func (r RiskTier) Severity() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 0
	}
}

func (r RiskTier) Valid() bool {
	return r.Severity() > 0
}

type Recommendations struct {
	Immediate []string `json:"immediate" yaml:"immediate"`
	ShortTerm []string `json:"shortTerm" yaml:"short_term"`
	LongTerm  []string `json:"longTerm" yaml:"long_term"`
}

type Condition struct {
	Name            string          `json:"name" yaml:"name"`
	Symptoms        []string        `json:"symptoms" yaml:"symptoms"`
	Risk            RiskTier        `json:"risk" yaml:"risk"`
	Description     string          `json:"description" yaml:"description"`
	Recommendations Recommendations `json:"recommendations" yaml:"recommendations"`
}

func (c Condition) clone() Condition {
	c.Symptoms = append([]string(nil), c.Symptoms...)
	c.Recommendations = Recommendations{
		Immediate: append([]string(nil), c.Recommendations.Immediate...),
		ShortTerm: append([]string(nil), c.Recommendations.ShortTerm...),
		LongTerm:  append([]string(nil), c.Recommendations.LongTerm...),
	}
	return c
}

// Base is the read-only knowledge base. Build it once and share it freely.
type Base struct {
	conditions []Condition
	byName     map[string]int
	// index keeps condition names per symptom in table order; that order is
	// the tie-break for equally scored candidates.
	index    map[string][]string
	symptoms []string
}

// New validates the table and derives the pattern index from it.
func New(conditions []Condition) (*Base, error) {
	if len(conditions) == 0 {
		return nil, errors.New("knowledge: no conditions")
	}

	b := &Base{
		conditions: make([]Condition, 0, len(conditions)),
		byName:     make(map[string]int, len(conditions)),
		index:      make(map[string][]string),
	}

	for i, c := range conditions {
		c = c.clone()
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("knowledge: condition %d has no name", i)
		}
		if _, dup := b.byName[c.Name]; dup {
			return nil, fmt.Errorf("knowledge: duplicate condition %q", c.Name)
		}
		c.Risk = RiskTier(strings.ToLower(string(c.Risk)))
		if !c.Risk.Valid() {
			return nil, fmt.Errorf("knowledge: condition %q has invalid risk %q", c.Name, c.Risk)
		}

		seen := make(map[string]bool, len(c.Symptoms))
		symptoms := make([]string, 0, len(c.Symptoms))
		for _, s := range c.Symptoms {
			id := Canonical(s)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			symptoms = append(symptoms, id)
		}
		if len(symptoms) == 0 {
			return nil, fmt.Errorf("knowledge: condition %q has no symptoms", c.Name)
		}
		c.Symptoms = symptoms

		b.byName[c.Name] = len(b.conditions)
		b.conditions = append(b.conditions, c)

		for _, s := range symptoms {
			if _, ok := b.index[s]; !ok {
				b.symptoms = append(b.symptoms, s)
			}
			b.index[s] = append(b.index[s], c.Name)
		}
	}

	return b, nil
}

// Condition returns a copy of the named condition.
func (b *Base) Condition(name string) (Condition, error) {
	i, ok := b.byName[name]
	if !ok {
		return Condition{}, fmt.Errorf("%w: %s", ErrUnknownCondition, name)
	}
	return b.conditions[i].clone(), nil
}

// lookup returns the stored condition without copying. Callers must not
// mutate the result.
func (b *Base) lookup(name string) (*Condition, bool) {
	i, ok := b.byName[name]
	if !ok {
		return nil, false
	}
	return &b.conditions[i], true
}

// Risk returns the tier of the named condition and false when unknown.
func (b *Base) Risk(name string) (RiskTier, bool) {
	c, ok := b.lookup(name)
	if !ok {
		return "", false
	}
	return c.Risk, true
}

func (b *Base) Description(name string) string {
	if c, ok := b.lookup(name); ok {
		return c.Description
	}
	return ""
}

// RecommendationsFor returns a copy of the named condition's tiers.
func (b *Base) RecommendationsFor(name string) Recommendations {
	c, ok := b.lookup(name)
	if !ok {
		return Recommendations{}
	}
	return c.clone().Recommendations
}

// SymptomsOf returns the symptom set of the named condition.
func (b *Base) SymptomsOf(name string) []string {
	c, ok := b.lookup(name)
	if !ok {
		return nil
	}
	return append([]string(nil), c.Symptoms...)
}

// ConditionsFor returns the pattern index entry for a canonical symptom.
func (b *Base) ConditionsFor(symptom string) []string {
	return append([]string(nil), b.index[symptom]...)
}

// Known reports whether the symptom appears in any condition.
func (b *Base) Known(symptom string) bool {
	_, ok := b.index[symptom]
	return ok
}

// Symptoms lists every known symptom in first-defined order.
func (b *Base) Symptoms() []string {
	return append([]string(nil), b.symptoms...)
}

// Conditions returns a copy of the table in definition order.
func (b *Base) Conditions() []Condition {
	out := make([]Condition, len(b.conditions))
	for i, c := range b.conditions {
		out[i] = c.clone()
	}
	return out
}

// Canonical folds a reported symptom into its identifier form:
// "Muscle Aches" and "muscle-aches" both become "muscle_aches".
func Canonical(symptom string) string {
	s := strings.ToLower(strings.TrimSpace(symptom))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), "_")
}

// DisplayName renders an identifier for people, e.g. "Muscle aches".
func DisplayName(symptom string) string {
	s := strings.ReplaceAll(Canonical(symptom), "_", " ")
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
