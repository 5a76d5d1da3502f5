package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
	}{
		{input: "none", expected: NoneSeverity},
		{input: "Skip", expected: SkipSeverity},
		{input: "OPTION", expected: OptionSeverity},
		{input: "  force ", expected: ForceSeverity},
		{input: "", expected: UnknownSeverity},
		{input: "bogosity", expected: UnknownSeverity},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseSeverity(test.input))
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "Force", ForceSeverity.String())
	assert.Equal(t, "UnknownSeverity", Severity(-1).String())
	assert.Equal(t, "UnknownSeverity", Severity(len(severityStr)).String())
}

func TestSeverityActions(t *testing.T) {
	tests := []struct {
		severity Severity
		expected []string
	}{
		{
			severity: ForceSeverity,
			expected: []string{ActionUpdate},
		},
		{
			severity: OptionSeverity,
			expected: []string{ActionUpdate, ActionNextTime},
		},
		{
			severity: SkipSeverity,
			expected: []string{ActionUpdate, ActionNextTime, ActionSkipVersion},
		},
		{
			severity: NoneSeverity,
			expected: nil,
		},
		{
			severity: UnknownSeverity,
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.severity.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, test.severity.Actions())
			assert.Equal(t, len(test.expected), test.severity.Buttons())
		})
	}
}

func TestSeverityVoluntary(t *testing.T) {
	assert.True(t, SkipSeverity.Voluntary())
	assert.True(t, OptionSeverity.Voluntary())
	assert.False(t, ForceSeverity.Voluntary())
	assert.False(t, NoneSeverity.Voluntary())
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		input    string
		expected Frequency
	}{
		{input: "immediately", expected: Immediately},
		{input: "Daily", expected: Daily},
		{input: "WEEKLY", expected: Weekly},
		{input: "", expected: UnknownFrequency},
		{input: "hourly", expected: UnknownFrequency},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseFrequency(test.input))
		})
	}
}
