package advisory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/updatewatch/updatewatch/internal/log"
	"github.com/updatewatch/updatewatch/updatewatch/version"
)

// Policy parameterizes an Advisor: either a fixed severity chosen once at
// construction (static) or a set of minor/major gap thresholds evaluated per
// version pair (conditional).
type Policy struct {
	Frequency Frequency `json:"frequency"`

	// Severity is the fixed decision for static policies; ignored when
	// Conditional is set.
	Severity Severity `json:"severity"`

	Conditional bool `json:"conditional"`

	// VoluntaryGap is the minor-version distance at which an upgrade becomes
	// optionally suggested (same major line).
	VoluntaryGap int `json:"voluntary-gap"`

	// InvoluntaryGap is the minor-version distance at which an upgrade becomes
	// mandatory (same major line).
	InvoluntaryGap int `json:"involuntary-gap"`

	// MajorInvoluntaryGap is the minor-version point within a
	// one-major-step-ahead release after which upgrading becomes mandatory.
	MajorInvoluntaryGap int `json:"major-involuntary-gap"`
}

// NewStaticPolicy returns a policy with a severity fixed at construction. A
// severity of None is legal, signaling that the caller presents a fully custom
// prompt.
func NewStaticPolicy(frequency Frequency, severity Severity) Policy {
	return Policy{
		Frequency: frequency,
		Severity:  severity,
	}
}

// NewConditionalPolicy returns a policy that derives severity from the version
// delta on each evaluation. All thresholds must be non-negative.
func NewConditionalPolicy(frequency Frequency, voluntaryGap, involuntaryGap, majorInvoluntaryGap int) (Policy, error) {
	var err error
	if voluntaryGap < 0 {
		err = multierror.Append(err, fmt.Errorf("voluntary gap must be non-negative (got %d)", voluntaryGap))
	}
	if involuntaryGap < 0 {
		err = multierror.Append(err, fmt.Errorf("involuntary gap must be non-negative (got %d)", involuntaryGap))
	}
	if majorInvoluntaryGap < 0 {
		err = multierror.Append(err, fmt.Errorf("major involuntary gap must be non-negative (got %d)", majorInvoluntaryGap))
	}
	if err != nil {
		return Policy{}, err
	}

	if voluntaryGap > involuntaryGap {
		// not an error, but the Option severity is unreachable this way
		log.Warnf("voluntary gap (%d) exceeds involuntary gap (%d): conditional policy can never yield an Option severity", voluntaryGap, involuntaryGap)
	}

	return Policy{
		Frequency:           frequency,
		Conditional:         true,
		VoluntaryGap:        voluntaryGap,
		InvoluntaryGap:      involuntaryGap,
		MajorInvoluntaryGap: majorInvoluntaryGap,
	}, nil
}

var presets = map[string]Policy{
	"critical":   NewStaticPolicy(Immediately, ForceSeverity),
	"annoying":   NewStaticPolicy(Immediately, OptionSeverity),
	"persistent": NewStaticPolicy(Daily, OptionSeverity),
	"default":    NewStaticPolicy(Daily, SkipSeverity),
	"hinting":    NewStaticPolicy(Weekly, OptionSeverity),
	"relaxed":    NewStaticPolicy(Weekly, SkipSeverity),
}

// ParsePreset returns the named static policy preset.
func ParsePreset(userStr string) (Policy, error) {
	policy, ok := presets[strings.ToLower(strings.TrimSpace(userStr))]
	if !ok {
		return Policy{}, fmt.Errorf("unknown policy preset %q (available=%+v)", userStr, PresetNames())
	}
	return policy, nil
}

// PresetNames lists the available static policy presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate derives a new severity from the given installed/available version
// pair. This is a pure transition function: static policies always return the
// fixed severity, and a parse failure on either input returns the prior
// severity unchanged (an unparseable version almost always indicates a
// transient upstream data problem, not something to interrupt the user for).
func (p Policy) Evaluate(prior Severity, installedText, availableText string) Severity {
	if !p.Conditional {
		return p.Severity
	}

	installed, err := version.Parse(installedText)
	if err != nil {
		log.Debugf("unable to parse installed version %q (severity unchanged): %+v", installedText, err)
		return prior
	}

	available, err := version.Parse(availableText)
	if err != nil {
		log.Debugf("unable to parse available version %q (severity unchanged): %+v", availableText, err)
		return prior
	}

	return p.evaluateGap(installed, available)
}

// evaluateGap applies the threshold rules in precedence order; the first
// matching branch wins.
func (p Policy) evaluateGap(installed, available version.SemanticVersion) Severity {
	majorGap := available.Major - installed.Major

	switch {
	case majorGap < 0:
		// the installed build is ahead of the published line (e.g. a beta
		// install); minor-gap rules are meaningless across majors, so never nag
		return NoneSeverity
	case majorGap == 1:
		// crossing one major boundary is tolerated until the new major line has
		// matured past the minor-version threshold
		if available.Minor >= p.MajorInvoluntaryGap {
			return ForceSeverity
		}
		return NoneSeverity
	case majorGap > 1:
		return ForceSeverity
	case installed.Minor+p.InvoluntaryGap <= available.Minor:
		return ForceSeverity
	case installed.Minor+p.VoluntaryGap <= available.Minor:
		return OptionSeverity
	}

	return NoneSeverity
}
