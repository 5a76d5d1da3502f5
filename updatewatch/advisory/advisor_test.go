package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisorStaticPolicy(t *testing.T) {
	for _, preset := range PresetNames() {
		t.Run(preset, func(t *testing.T) {
			policy, err := ParsePreset(preset)
			require.NoError(t, err)

			advisor := NewAdvisor(policy)
			expected := policy.Severity

			// severity is fixed at construction...
			assert.Equal(t, expected, advisor.Severity())

			// ... and never changes, no matter the version delta
			advisor.Check("1.0.0", "9.0.0")
			assert.Equal(t, expected, advisor.Severity())

			advisor.Check("1.0.0", "1.0.0")
			assert.Equal(t, expected, advisor.Severity())

			assert.Equal(t, policy.Frequency, advisor.Frequency())
		})
	}
}

func TestAdvisorConditionalPolicy(t *testing.T) {
	policy, err := NewConditionalPolicy(Immediately, 2, 5, 3)
	require.NoError(t, err)

	advisor := NewAdvisor(policy)

	// conditional advisors start at None
	assert.Equal(t, NoneSeverity, advisor.Severity())

	advisor.Check("2.1.0", "2.4.0")
	assert.Equal(t, OptionSeverity, advisor.Severity())

	advisor.Check("2.1.0", "2.9.0")
	assert.Equal(t, ForceSeverity, advisor.Severity())

	// bad input leaves the previous decision in place
	advisor.Check("2.banana.0", "2.9.0")
	assert.Equal(t, ForceSeverity, advisor.Severity())

	// a healthy pair within the window recovers to None
	advisor.Check("2.9.0", "2.9.0")
	assert.Equal(t, NoneSeverity, advisor.Severity())
}

func TestAdvisorCheckIdempotent(t *testing.T) {
	policy, err := NewConditionalPolicy(Daily, 2, 5, 3)
	require.NoError(t, err)

	advisor := NewAdvisor(policy)
	for i := 0; i < 5; i++ {
		advisor.Check("2.1.0", "2.4.0")
		assert.Equal(t, OptionSeverity, advisor.Severity())
	}
}

func TestAdvisorDecision(t *testing.T) {
	policy, err := NewConditionalPolicy(Weekly, 2, 5, 3)
	require.NoError(t, err)

	advisor := NewAdvisor(policy)
	advisor.Check("2.1.0", "2.9.0")

	assert.Equal(t, Decision{
		Severity:  ForceSeverity,
		Frequency: Weekly,
	}, advisor.Decision())
}
