package advisory

import "strings"

const (
	UnknownSeverity Severity = iota
	NoneSeverity
	SkipSeverity
	OptionSeverity
	ForceSeverity
)

// Severity is the coercive strength of the upgrade prompt to show. Option and
// Skip are equally strong (both voluntary); they differ only in whether a
// "skip this version" dismissal is offered.
type Severity int

var severityStr = []string{
	"UnknownSeverity",
	"None",
	"Skip",
	"Option",
	"Force",
}

var Severities = []Severity{
	NoneSeverity,
	SkipSeverity,
	OptionSeverity,
	ForceSeverity,
}

// captions a host alert dialog would put on the prompt buttons.
const (
	ActionUpdate      = "Update"
	ActionNextTime    = "Next time"
	ActionSkipVersion = "Skip this version"
)

func ParseSeverity(userStr string) Severity {
	switch strings.ToLower(strings.TrimSpace(userStr)) {
	case strings.ToLower(NoneSeverity.String()):
		return NoneSeverity
	case strings.ToLower(SkipSeverity.String()):
		return SkipSeverity
	case strings.ToLower(OptionSeverity.String()):
		return OptionSeverity
	case strings.ToLower(ForceSeverity.String()):
		return ForceSeverity
	}
	return UnknownSeverity
}

func (s Severity) String() string {
	if int(s) >= len(severityStr) || s < 0 {
		return severityStr[0]
	}

	return severityStr[s]
}

// Voluntary indicates whether the user can put the upgrade off.
func (s Severity) Voluntary() bool {
	return s == SkipSeverity || s == OptionSeverity
}

// Buttons returns how many dismissal affordances the prompt for this severity
// carries.
func (s Severity) Buttons() int {
	return len(s.Actions())
}

// Actions returns the prompt button captions for this severity, strongest
// first. A None (or Unknown) severity yields no actions: no prompt is shown.
func (s Severity) Actions() []string {
	switch s {
	case ForceSeverity:
		return []string{ActionUpdate}
	case OptionSeverity:
		return []string{ActionUpdate, ActionNextTime}
	case SkipSeverity:
		return []string{ActionUpdate, ActionNextTime, ActionSkipVersion}
	}
	return nil
}
