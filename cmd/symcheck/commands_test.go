package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/vitalsense/internal/insights"
	"github.com/Skufu/vitalsense/internal/knowledge"
	"github.com/Skufu/vitalsense/internal/symptoms"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "", "analyze", "--symptoms", "headache", "--systolic", "150")
	require.NoError(t, err)

	var res symptoms.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, knowledge.RiskHigh, res.Risk)
	assert.Equal(t, []string{"Elevated systolic blood pressure"}, res.VitalFlags)
}

func TestAnalyzeCommandPositionalSymptoms(t *testing.T) {
	out, err := run(t, "", "analyze", "sneezing", "itchy_eyes")
	require.NoError(t, err)

	var res symptoms.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "allergies", res.Leading())
	assert.Equal(t, knowledge.RiskMedium, res.Risk)
	assert.Empty(t, res.VitalFlags)
}

func TestAnalyzeCommandReadsAllVitals(t *testing.T) {
	cmd := newAnalyzeCmd(new(string))
	require.NoError(t, cmd.ParseFlags([]string{
		"--systolic", "120", "--diastolic", "80", "--heart-rate", "70",
		"--temperature", "98.6", "--blood-glucose", "140", "--weight", "72.5",
	}))

	v := vitalsFromFlags(cmd)
	require.NotNil(t, v.BloodGlucose)
	require.NotNil(t, v.Weight)
	assert.Equal(t, 140.0, *v.BloodGlucose)
	assert.Equal(t, 72.5, *v.Weight)
	assert.Equal(t, 120.0, *v.Systolic)

	v = vitalsFromFlags(newAnalyzeCmd(new(string)))
	assert.Nil(t, v.BloodGlucose)
	assert.Nil(t, v.Temperature)

	out, err := run(t, "", "analyze", "-s", "sneezing", "--blood-glucose", "250", "--weight", "90")
	require.NoError(t, err)
	var res symptoms.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.VitalFlags)
}

func TestAnalyzeCommandCustomKnowledgeBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
conditions:
  - name: asthma
    risk: high
    symptoms: [wheezing, shortness_of_breath]
`), 0o600))

	out, err := run(t, "", "--kb", path, "analyze", "-s", "wheezing")
	require.NoError(t, err)
	assert.Contains(t, out, `"condition": "asthma"`)

	_, err = run(t, "", "--kb", filepath.Join(t.TempDir(), "missing.yaml"), "analyze", "-s", "wheezing")
	assert.Error(t, err)
}

func TestInsightsCommandFromStdin(t *testing.T) {
	history := `[
		{"date": "2024-01-10T09:00:00Z", "symptoms": ["fever", "cough"], "riskLevel": "high", "condition": "flu"},
		{"date": "2024-01-05T09:00:00Z", "symptoms": ["fever", "cough"], "riskLevel": "high"}
	]`
	out, err := run(t, history, "insights")
	require.NoError(t, err)

	var res insights.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Records)
	assert.Equal(t, 2, res.Seasonal[0])
	assert.Contains(t, res.Alerts, insights.AlertRepeatedHigh)
}

func TestInsightsCommandBadInput(t *testing.T) {
	_, err := run(t, "{not json", "insights")
	assert.Error(t, err)
}
