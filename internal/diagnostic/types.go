package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding, e.g. "unknown_property".
	Code    string
	Message string
	// Type is the model type the finding relates to.
	Type string
	// Property is the property the finding relates to, if any.
	Property string
	// Suggestion is a likely intended property name, if one was found.
	Suggestion string
}

// String formats the diagnostic as "[Type] Property: [code] message".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Property != "" {
		prefix = append(prefix, d.Property)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", d.Suggestion)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics holds the findings of one validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Add records d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
		return
	}

	d.Warnings = append(d.Warnings, diag)
}

// AddError records an error finding.
func (d *Diagnostics) AddError(code, message, typ, property string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Type: typ, Property: property})
}

// AddWarning records a warning finding.
func (d *Diagnostics) AddWarning(code, message, typ, property string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Type: typ, Property: property})
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Codes returns the codes of all findings, errors first.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors)+len(d.Warnings))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	for _, w := range d.Warnings {
		codes = append(codes, w.Code)
	}

	return codes
}

// Err joins all error findings into one error, or returns nil.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
