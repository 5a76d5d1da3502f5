package models

import (
	"github.com/updatewatch/updatewatch/updatewatch/advisory"
)

// Document represents the report document for an upgrade-prompt decision.
type Document struct {
	Installed string   `json:"installed"`
	Available string   `json:"available"`
	Severity  string   `json:"severity"`
	Frequency string   `json:"frequency"`
	Prompt    bool     `json:"prompt"`
	Actions   []string `json:"actions,omitempty"`
}

// NewDocument creates and populates a new decision document from the given
// advisor output.
func NewDocument(installed, available string, decision advisory.Decision) Document {
	return Document{
		Installed: installed,
		Available: available,
		Severity:  decision.Severity.String(),
		Frequency: decision.Frequency.String(),
		Prompt:    decision.Severity.Actions() != nil,
		Actions:   decision.Severity.Actions(),
	}
}
