package advisory

// Advisor owns a single policy and the current severity decision. An Advisor
// instance is meant to be owned by one logical caller (e.g. one check per
// app-session lifecycle); concurrent Check calls on a shared instance race on
// the severity cell and require external synchronization.
type Advisor struct {
	policy   Policy
	severity Severity
}

func NewAdvisor(policy Policy) *Advisor {
	severity := NoneSeverity
	if !policy.Conditional {
		severity = policy.Severity
	}
	return &Advisor{
		policy:   policy,
		severity: severity,
	}
}

// Check re-derives the current severity for the given installed/available
// version pair. Static policies are fixed at construction, so Check never
// changes their severity; conditional policies leave the severity unchanged
// when either input fails to parse.
func (a *Advisor) Check(installed, available string) {
	a.severity = a.policy.Evaluate(a.severity, installed, available)
}

func (a *Advisor) Severity() Severity {
	return a.severity
}

func (a *Advisor) Frequency() Frequency {
	return a.policy.Frequency
}

func (a *Advisor) Policy() Policy {
	return a.policy
}

// Decision returns the (severity, frequency) pair handed to the presentation
// layer.
func (a *Advisor) Decision() Decision {
	return Decision{
		Severity:  a.severity,
		Frequency: a.policy.Frequency,
	}
}

// Decision is the advisor's output: how strongly to prompt, and how often the
// caller should re-ask.
type Decision struct {
	Severity  Severity  `json:"severity"`
	Frequency Frequency `json:"frequency"`
}
