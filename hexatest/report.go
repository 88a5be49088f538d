package hexatest

// TraceEvent records one scenario step's invocation and outcome.
// Detail holds the rendered output for ok outcomes and the message for
// failure/error outcomes.
type TraceEvent struct {
	Seq     int    `json:"seq"`
	UseCase string `json:"use_case"`
	Input   any    `json:"input"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
}

// Report is the outcome of a scenario run.
type Report struct {
	Scenario string       `json:"scenario"`
	RunToken string       `json:"run_token"`
	Pass     bool         `json:"pass"`
	Trace    []TraceEvent `json:"trace"`
	Errors   []string     `json:"errors,omitempty"`
}

// newReport creates a passing report; AddError flips it to failing.
func newReport(scenario, runToken string) *Report {
	return &Report{
		Scenario: scenario,
		RunToken: runToken,
		Pass:     true,
		Trace:    []TraceEvent{},
	}
}

// AddError records an expectation mismatch and marks the report failed.
func (r *Report) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

func (r *Report) addTrace(seq int, useCase string, input any, outcome, detail string) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:     seq,
		UseCase: useCase,
		Input:   input,
		Outcome: outcome,
		Detail:  detail,
	})
}
