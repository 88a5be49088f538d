package hexatest

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/portico/hexa"
)

// RunWithGolden executes a scenario and compares the JSON-rendered report
// against testdata/golden/{scenario.Name}.golden. Scenarios used with
// golden files should pin a RunToken; a generated token changes on every
// run and can never match a committed file.
//
// To regenerate golden files, run:
//
//	go test ./hexatest -update
func RunWithGolden(t *testing.T, c *hexa.Container, s *Scenario, opts ...RunOption) *Report {
	t.Helper()

	report := RunScenario(c, s, opts...)
	AssertGolden(t, s.Name, report)
	return report
}

// AssertGolden compares an already-obtained report against the golden
// file named after the scenario.
func AssertGolden(t *testing.T, name string, report *Report) {
	t.Helper()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal report: %v", err)
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
