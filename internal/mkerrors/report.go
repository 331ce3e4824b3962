package mkerrors

import (
	"encoding/json"
	"fmt"
)

// Report is the structured error type returned by every phase of the
// engine: a stable code, the phase it occurred in, a human-readable
// message, and optional structured data for programmatic consumers.
type Report struct {
	Code    string         `json:"code"`
	Phase   string         `json:"phase"` // "typecheck", "smt", "bmc", "induction"
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (r *Report) Error() string {
	return fmt.Sprintf("%s [%s]: %s", r.Code, r.Phase, r.Message)
}

// ToJSON renders r as its machine-readable form, for callers that report
// diagnostics to tooling rather than a terminal.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// New builds a Report with no structured data.
func New(code, phase, message string) *Report {
	return &Report{Code: code, Phase: phase, Message: message}
}

// WithData returns a copy of r with a data key set, for chaining at the
// call site: mkerrors.New(...).WithData("var", name).
func (r *Report) WithData(key string, v any) *Report {
	cp := *r
	cp.Data = make(map[string]any, len(r.Data)+1)
	for k, v := range r.Data {
		cp.Data[k] = v
	}
	cp.Data[key] = v
	return &cp
}
