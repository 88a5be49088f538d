package hexatest

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/portico/hexa"
)

// Outcome values for trace events and expect clauses.
const (
	OutcomeOk      = "ok"      // invocation returned; output not a failed Result
	OutcomeFailure = "failure" // invocation returned a failed Result
	OutcomeError   = "error"   // lookup/type error, or a panic in the operation body
)

// Scenario is a conformance test: an ordered list of named invocations
// with optional expectations, run against any container through its
// dynamic dispatch surface.
type Scenario struct {
	// Name uniquely identifies the scenario; it names the golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// RunToken pins the report's run token for deterministic golden
	// comparison. If empty, a fresh UUIDv7 token is generated per run.
	RunToken string `yaml:"run_token,omitempty"`

	// Steps are executed sequentially against the container.
	Steps []Step `yaml:"steps"`
}

// Step invokes one use case with a YAML-typed input.
type Step struct {
	Invoke string        `yaml:"invoke"`
	Input  any           `yaml:"input"`
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause validates a step's outcome. Value is compared against the
// rendered output of an ok outcome; Message is a substring match against
// the failure or error message.
type ExpectClause struct {
	Outcome string `yaml:"outcome"`
	Value   any    `yaml:"value,omitempty"`
	Message string `yaml:"message,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos surface immediately.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks structural requirements: a name, at least one step,
// and a known outcome in every expect clause.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario must have at least one step")
	}
	for i, step := range s.Steps {
		if step.Invoke == "" {
			return fmt.Errorf("step %d: invoke is required", i)
		}
		if step.Expect != nil {
			switch step.Expect.Outcome {
			case OutcomeOk, OutcomeFailure, OutcomeError:
			default:
				return fmt.Errorf("step %d: unknown expect outcome %q", i, step.Expect.Outcome)
			}
		}
	}
	return nil
}

// RunOption configures RunScenario.
type RunOption func(*runConfig)

type runConfig struct {
	tokens TokenGenerator
}

// WithTokenGenerator overrides the run token generator used when the
// scenario does not pin a token.
func WithTokenGenerator(g TokenGenerator) RunOption {
	return func(cfg *runConfig) { cfg.tokens = g }
}

// RunScenario executes every step against c and evaluates the expect
// clauses. Execution always continues past a mismatched step so the
// report carries the full trace; the report fails if any expectation
// does not hold.
func RunScenario(c *hexa.Container, s *Scenario, opts ...RunOption) *Report {
	cfg := runConfig{tokens: UUIDv7Generator{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	report := newReport(s.Name, runToken(s.RunToken, cfg.tokens))
	for i, step := range s.Steps {
		seq := i + 1
		outcome, detail := executeStep(c, step)
		report.addTrace(seq, step.Invoke, step.Input, outcome, detail)

		if step.Expect == nil {
			continue
		}
		if step.Expect.Outcome != outcome {
			report.AddError(fmt.Sprintf("step %d (%s): expected outcome %s, got %s (%s)",
				seq, step.Invoke, step.Expect.Outcome, outcome, detail))
			continue
		}
		if step.Expect.Value != nil {
			want := fmt.Sprintf("%v", step.Expect.Value)
			if want != detail {
				report.AddError(fmt.Sprintf("step %d (%s): expected value %s, got %s",
					seq, step.Invoke, want, detail))
			}
		}
		if step.Expect.Message != "" && !strings.Contains(detail, step.Expect.Message) {
			report.AddError(fmt.Sprintf("step %d (%s): expected message containing %q, got %q",
				seq, step.Invoke, step.Expect.Message, detail))
		}
	}
	return report
}

// executeStep invokes one step and classifies its outcome. Panics from
// the operation body are contained here so a defective step cannot abort
// the run.
func executeStep(c *hexa.Container, step Step) (outcome, detail string) {
	var out any
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Value: r}
			}
		}()
		out, err = c.InvokeNamed(step.Invoke, step.Input)
	}()

	if err != nil {
		return OutcomeError, err.Error()
	}
	if r, ok := out.(resultOutcome); ok {
		if r.IsFailure() {
			return OutcomeFailure, r.Err()
		}
		return OutcomeOk, renderSuccess(out)
	}
	return OutcomeOk, fmt.Sprintf("%v", out)
}

// renderSuccess renders the unwrapped value of a success Result. The
// Get method is reached reflectively because Result's type parameter is
// unknown here; the success check has already been made, so Get cannot
// panic.
func renderSuccess(out any) string {
	get := reflect.ValueOf(out).MethodByName("Get")
	if !get.IsValid() {
		return fmt.Sprintf("%v", out)
	}
	return fmt.Sprintf("%v", get.Call(nil)[0].Interface())
}
