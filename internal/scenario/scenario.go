// Package scenario drives a simulated device through a YAML list of steps
// and reports what the accessibility bridge did.
package scenario

import (
	"fmt"
	"os"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/trace"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted run against one simulated device.
type Scenario struct {
	Name        string                      `yaml:"name,omitempty"          json:"name,omitempty"`
	Platform    string                      `yaml:"platform"                json:"platform"`
	SDK         int                         `yaml:"sdk,omitempty"           json:"sdk,omitempty"`
	FontScale   float64                     `yaml:"font-scale,omitempty"    json:"font-scale,omitempty"`
	ContentSize string                      `yaml:"content-size,omitempty"  json:"content-size,omitempty"`
	Service     bool                        `yaml:"service,omitempty"       json:"service,omitempty"`
	ViewTypes   []string                    `yaml:"view-types,omitempty"    json:"view-types,omitempty"`
	StopOnError *bool                       `yaml:"stop-on-error,omitempty" json:"stop-on-error,omitempty"`
	Steps       []map[string]map[string]any `yaml:"steps"                   json:"steps"`
}

// Result is the output of a scenario run.
type Result struct {
	OK        bool             `yaml:"ok"                json:"ok"`
	Action    string           `yaml:"action"            json:"action"`
	Name      string           `yaml:"name,omitempty"    json:"name,omitempty"`
	Platform  string           `yaml:"platform"          json:"platform"`
	Steps     int              `yaml:"steps"             json:"steps"`
	Completed int              `yaml:"completed"         json:"completed"`
	Error     string           `yaml:"error,omitempty"   json:"error,omitempty"`
	Results   []StepResult     `yaml:"results"           json:"results"`
	Events    []Event          `yaml:"events,omitempty"  json:"events,omitempty"`
	Final     []model.Snapshot `yaml:"final,omitempty"   json:"final,omitempty"`
}

// StepResult is the output for a single step.
type StepResult struct {
	Step     int                 `yaml:"step"                json:"step"`
	OK       bool                `yaml:"ok"                  json:"ok"`
	Action   string              `yaml:"action"              json:"action"`
	Error    string              `yaml:"error,omitempty"     json:"error,omitempty"`
	View     string              `yaml:"view,omitempty"      json:"view,omitempty"`
	ID       uint64              `yaml:"id,omitempty"        json:"id,omitempty"`
	Property string              `yaml:"property,omitempty"  json:"property,omitempty"`
	Value    string              `yaml:"value,omitempty"     json:"value,omitempty"`
	Pass     *bool               `yaml:"pass,omitempty"      json:"pass,omitempty"`
	Changes  []model.StateChange `yaml:"changes,omitempty"   json:"changes,omitempty"`
	Views    []model.Snapshot    `yaml:"views,omitempty"     json:"views,omitempty"`
}

// Event is one application-visible notification raised during a run.
type Event struct {
	Seq   int    `yaml:"seq"             json:"seq"`
	View  string `yaml:"view,omitempty"  json:"view,omitempty"`
	Event string `yaml:"event"           json:"event"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
}

// Parse decodes a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("no steps provided: expected a YAML list under steps")
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Options returns the session options the scenario describes.
func (s *Scenario) Options(sink *trace.Sink) Options {
	return Options{
		Platform:    s.Platform,
		SDK:         s.SDK,
		FontScale:   s.FontScale,
		ContentSize: s.ContentSize,
		Service:     s.Service,
		ViewTypes:   s.ViewTypes,
		Sink:        sink,
	}
}

// Run executes every step. By default execution stops at the first failing
// step; the remaining results are omitted.
func Run(s *Scenario, sink *trace.Sink) (*Result, error) {
	sess, err := NewSession(s.Options(sink))
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	stopOnError := true
	if s.StopOnError != nil {
		stopOnError = *s.StopOnError
	}

	res := &Result{
		Action:   "simulate",
		Name:     s.Name,
		Platform: string(sess.Kind()),
		Steps:    len(s.Steps),
		Results:  make([]StepResult, 0, len(s.Steps)),
	}
	failed := false
	for i, step := range s.Steps {
		stepNum := i + 1
		if len(step) != 1 {
			failed = true
			msg := fmt.Sprintf("step %d: expected exactly one action key, got %d", stepNum, len(step))
			res.Results = append(res.Results, StepResult{Step: stepNum, Error: msg})
			if stopOnError {
				res.Error = msg
				break
			}
			continue
		}
		for action, params := range step {
			r, err := sess.Step(action, params)
			r.Step = stepNum
			if err == nil && r.Pass != nil && !*r.Pass {
				err = fmt.Errorf("assertion failed: %s", r.Value)
			}
			if err != nil {
				failed = true
				r.Error = err.Error()
				res.Results = append(res.Results, r)
				if stopOnError {
					res.Error = fmt.Sprintf("step %d: %s", stepNum, err)
				}
				continue
			}
			r.OK = true
			res.Completed++
			res.Results = append(res.Results, r)
		}
		if failed && stopOnError {
			break
		}
	}
	res.OK = !failed
	res.Events = sess.Events()
	res.Final = sess.Snapshot()
	return res, nil
}
