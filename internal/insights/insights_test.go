package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/vitalsense/internal/knowledge"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func rec(date time.Time, risk knowledge.RiskTier, symptoms ...string) Record {
	return Record{Date: date, Risk: risk, Symptoms: symptoms}
}

func TestCommonCombinations_RequiresRepeat(t *testing.T) {
	a := NewAnalyzer()

	once := a.Analyze([]Record{rec(day(2024, 3, 1), knowledge.RiskMedium, "fever", "cough")})
	assert.Empty(t, once.CommonCombinations)

	twice := a.Analyze([]Record{
		rec(day(2024, 3, 2), knowledge.RiskMedium, "fever", "cough"),
		rec(day(2024, 3, 1), knowledge.RiskMedium, "cough", "fever"),
	})
	require.Len(t, twice.CommonCombinations, 1)
	assert.Equal(t, Pair{Symptoms: [2]string{"cough", "fever"}, Count: 2}, twice.CommonCombinations[0])
}

func TestCommonCombinations_TopThreeByCount(t *testing.T) {
	a := NewAnalyzer()
	d := day(2024, 5, 1)
	res := a.Analyze([]Record{
		rec(d, knowledge.RiskLow, "a", "b", "c", "d"),
		rec(d, knowledge.RiskLow, "a", "b", "c", "d"),
		rec(d, knowledge.RiskLow, "c", "d"),
	})

	require.Len(t, res.CommonCombinations, 3)
	assert.Equal(t, [2]string{"c", "d"}, res.CommonCombinations[0].Symptoms)
	assert.Equal(t, 3, res.CommonCombinations[0].Count)
	assert.Equal(t, [2]string{"a", "b"}, res.CommonCombinations[1].Symptoms)
	assert.Equal(t, [2]string{"a", "c"}, res.CommonCombinations[2].Symptoms)
}

func TestSeasonalAndWeekday(t *testing.T) {
	a := NewAnalyzer()
	// 2024-01-01 was a Monday, 2024-02-04 a Sunday.
	res := a.Analyze([]Record{
		rec(day(2024, time.February, 4), knowledge.RiskLow, "cough"),
		rec(day(2024, time.January, 1), knowledge.RiskLow, "cough", "fever", "fever"),
	})

	assert.Equal(t, 1, res.Seasonal[0])
	assert.Equal(t, 1, res.Seasonal[1])
	assert.Equal(t, 1, res.Weekday[time.Sunday])
	assert.Equal(t, 2, res.Weekday[time.Monday])
	assert.Contains(t, res.Recommendations, WinterAdvice)
}

func TestRiskTrendKeepsNewestFirst(t *testing.T) {
	res := NewAnalyzer().Analyze([]Record{
		rec(day(2024, 1, 3), knowledge.RiskHigh, "x"),
		rec(day(2024, 1, 2), knowledge.RiskLow, "x"),
		rec(day(2024, 1, 1), knowledge.RiskMedium, "x"),
	})
	assert.Equal(t, []int{3, 1, 2}, res.RiskTrend)
}

func TestAlert_RiskIncreased(t *testing.T) {
	res := NewAnalyzer().Analyze([]Record{
		rec(day(2024, 6, 2), knowledge.RiskHigh, "chest_pain"),
		rec(day(2024, 6, 1), knowledge.RiskMedium, "cough"),
	})
	assert.Contains(t, res.Alerts, AlertRiskIncreased)
	assert.NotContains(t, res.Alerts, AlertRepeatedHigh)
}

func TestAlert_RepeatedHighRisk(t *testing.T) {
	res := NewAnalyzer().Analyze([]Record{
		rec(day(2024, 6, 3), knowledge.RiskLow, "cough"),
		rec(day(2024, 7, 2), knowledge.RiskHigh, "chest_pain"),
		rec(day(2024, 8, 1), knowledge.RiskHigh, "fever"),
	})
	assert.Contains(t, res.Alerts, AlertRepeatedHigh)
	assert.NotContains(t, res.Alerts, AlertRiskIncreased)
}

func TestAlert_UpwardTrend(t *testing.T) {
	cases := []struct {
		name  string
		risks []knowledge.RiskTier
		want  bool
	}{
		{"rising", []knowledge.RiskTier{knowledge.RiskHigh, knowledge.RiskMedium, knowledge.RiskLow}, true},
		{"flat medium", []knowledge.RiskTier{knowledge.RiskMedium, knowledge.RiskMedium, knowledge.RiskMedium}, true},
		{"flat low", []knowledge.RiskTier{knowledge.RiskLow, knowledge.RiskLow, knowledge.RiskLow}, false},
		{"falling", []knowledge.RiskTier{knowledge.RiskLow, knowledge.RiskMedium, knowledge.RiskHigh}, false},
		{"dip", []knowledge.RiskTier{knowledge.RiskMedium, knowledge.RiskHigh, knowledge.RiskLow}, false},
		{"too short", []knowledge.RiskTier{knowledge.RiskHigh, knowledge.RiskMedium}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var h []Record
			for i, r := range tc.risks {
				h = append(h, rec(day(2024, time.Month(i+1), 10), r, fmt.Sprintf("s%d", i)))
			}
			res := NewAnalyzer().Analyze(h)
			if tc.want {
				assert.Contains(t, res.Alerts, AlertUpwardTrend)
			} else {
				assert.NotContains(t, res.Alerts, AlertUpwardTrend)
			}
		})
	}
}

func TestAlert_SeasonalPeakAndPersistentSymptom(t *testing.T) {
	res := NewAnalyzer().Analyze([]Record{
		rec(day(2024, 3, 20), knowledge.RiskLow, "headache", "nausea"),
		rec(day(2024, 3, 10), knowledge.RiskLow, "headache"),
		rec(day(2024, 8, 1), knowledge.RiskLow, "cough"),
	})

	assert.Contains(t, res.Alerts, "Symptoms tend to peak in March; plan preventive care ahead of time")
	assert.NotContains(t, res.Alerts, "Symptoms tend to peak in August; plan preventive care ahead of time")
	assert.Contains(t, res.Alerts, "Persistent symptom: Headache appears in at least half of your checks")
	assert.NotContains(t, res.Alerts, "Persistent symptom: Nausea appears in at least half of your checks")
}

func TestAlerts_Deduplicated(t *testing.T) {
	res := NewAnalyzer().Analyze([]Record{
		rec(day(2024, 1, 3), knowledge.RiskHigh, "fever"),
		rec(day(2024, 1, 2), knowledge.RiskHigh, "fever"),
		rec(day(2024, 1, 1), knowledge.RiskHigh, "fever"),
	})
	seen := map[string]bool{}
	for _, a := range res.Alerts {
		assert.False(t, seen[a], "duplicate alert %q", a)
		seen[a] = true
	}
}

func TestPersonalizedRecommendations(t *testing.T) {
	res := NewAnalyzer().Analyze([]Record{
		{Date: day(2024, 5, 3), Risk: knowledge.RiskMedium, Symptoms: []string{"fever"}, Condition: "flu"},
		{Date: day(2024, 5, 2), Risk: knowledge.RiskMedium, Symptoms: []string{"headache"}, Condition: "migraine"},
		{Date: day(2024, 5, 1), Risk: knowledge.RiskMedium, Symptoms: []string{"fever"}, Condition: "flu"},
		{Date: day(2024, 4, 1), Risk: knowledge.RiskLow, Symptoms: []string{"neck_pain"}, Condition: "tension_headache"},
	})
	assert.Equal(t, []string{conditionAdvice["flu"], conditionAdvice["migraine"]}, res.Recommendations)
}

func TestMalformedRecordsDoNotPanic(t *testing.T) {
	res := NewAnalyzer().Analyze([]Record{
		{Risk: knowledge.RiskHigh, Symptoms: []string{"fever", "cough"}},
		{Date: day(2024, 2, 1), Risk: "unknown"},
		{Date: day(2024, 2, 2), Risk: knowledge.RiskMedium, Symptoms: []string{"", "  "}},
	})

	assert.Equal(t, 3, res.Records)
	assert.Equal(t, []int{3, 0, 2}, res.RiskTrend)
	sum := 0
	for _, c := range res.Seasonal {
		sum += c
	}
	assert.Equal(t, 2, sum, "undated record is not bucketed")
	assert.Equal(t, [7]int{}, res.Weekday)
	assert.NotContains(t, res.Alerts, AlertRepeatedHigh)
}

func TestEmptyHistory(t *testing.T) {
	res := NewAnalyzer().Analyze(nil)
	assert.False(t, res.PatternDetected)
	assert.Empty(t, res.CommonCombinations)
	assert.Empty(t, res.Alerts)
	assert.Empty(t, res.Recommendations)
	assert.Empty(t, res.RiskTrend)
}

func TestFrequencyPolicy(t *testing.T) {
	var h []Record
	for i := 0; i < 6; i++ {
		h = append(h, rec(day(2024, 4, i+1), knowledge.RiskLow, "fever", fmt.Sprintf("s%d", i)))
	}

	res := NewAnalyzer().Analyze(h)
	assert.True(t, res.PatternDetected)
	assert.Equal(t, 1.0, res.PatternConfidence)

	short := NewAnalyzer().Analyze(h[:5])
	assert.False(t, short.PatternDetected, "five records are not enough")
	assert.Equal(t, 1.0, short.PatternConfidence)
}

func TestWithPatternPolicy(t *testing.T) {
	always := func([]Record) (bool, float64) { return true, 0.42 }
	res := NewAnalyzer(WithPatternPolicy(always)).Analyze(nil)
	assert.True(t, res.PatternDetected)
	assert.Equal(t, 0.42, res.PatternConfidence)

	// nil keeps the default.
	res = NewAnalyzer(WithPatternPolicy(nil)).Analyze(nil)
	assert.False(t, res.PatternDetected)
}
