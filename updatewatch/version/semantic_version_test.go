package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SemanticVersion
	}{
		{
			name:  "full version",
			input: "2.4.1.7",
			expected: SemanticVersion{
				Raw:      "2.4.1.7",
				Major:    2,
				Minor:    4,
				Patch:    1,
				Revision: 7,
			},
		},
		{
			name:  "three components padded",
			input: "2.4.1",
			expected: SemanticVersion{
				Raw:   "2.4.1",
				Major: 2,
				Minor: 4,
				Patch: 1,
			},
		},
		{
			name:  "two components padded",
			input: "2.1",
			expected: SemanticVersion{
				Raw:   "2.1",
				Major: 2,
				Minor: 1,
			},
		},
		{
			name:  "single component padded",
			input: "3",
			expected: SemanticVersion{
				Raw:   "3",
				Major: 3,
			},
		},
		{
			name:  "extra components beyond the fourth are not comparable",
			input: "1.2.3.4.5",
			expected: SemanticVersion{
				Raw:      "1.2.3.4.5",
				Major:    1,
				Minor:    2,
				Patch:    3,
				Revision: 4,
			},
		},
		{
			name:  "surrounding whitespace tolerated",
			input: "  1.0.2 ",
			expected: SemanticVersion{
				Raw:   "  1.0.2 ",
				Major: 1,
				Patch: 2,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := Parse(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestParseBadInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "empty string",
			input:    "",
			expected: ErrEmptyVersion,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: ErrEmptyVersion,
		},
		{
			name:     "non-numeric component",
			input:    "2.a.1",
			expected: &MalformedComponentError{Component: "a"},
		},
		{
			name:     "negative component",
			input:    "2.-1.0",
			expected: &MalformedComponentError{Component: "-1"},
		},
		{
			name:     "explicitly signed component",
			input:    "1.+2.3",
			expected: &MalformedComponentError{Component: "+2"},
		},
		{
			name:     "signed zero component",
			input:    "1.-0.3",
			expected: &MalformedComponentError{Component: "-0"},
		},
		{
			name:     "empty component",
			input:    "2..1",
			expected: &MalformedComponentError{Component: ""},
		},
		{
			name:     "trailing dot",
			input:    "1.0.",
			expected: &MalformedComponentError{Component: ""},
		},
		{
			name:     "non-numeric extra component",
			input:    "1.2.3.4.beta",
			expected: &MalformedComponentError{Component: "beta"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := Parse(test.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, test.expected)
			assert.Equal(t, SemanticVersion{}, actual)
		})
	}
}

func TestParseMalformedComponentDetails(t *testing.T) {
	_, err := Parse("2.a.1")
	require.Error(t, err)

	var malformedErr *MalformedComponentError
	require.True(t, errors.As(err, &malformedErr))
	assert.Equal(t, "2.a.1", malformedErr.Raw)
	assert.Equal(t, "a", malformedErr.Component)
	assert.Equal(t, 1, malformedErr.Index)
}

func TestSemanticVersionCompare(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		other    string
		expected int
	}{
		{
			name:     "equal",
			version:  "1.2.3.4",
			other:    "1.2.3.4",
			expected: 0,
		},
		{
			name:     "equal after padding",
			version:  "1.2",
			other:    "1.2.0.0",
			expected: 0,
		},
		{
			name:     "major dominates",
			version:  "2.0.0",
			other:    "1.9.9.9",
			expected: 1,
		},
		{
			name:     "minor breaks major tie",
			version:  "1.2.0",
			other:    "1.3.0",
			expected: -1,
		},
		{
			name:     "patch breaks minor tie",
			version:  "1.2.4",
			other:    "1.2.3",
			expected: 1,
		},
		{
			name:     "revision breaks patch tie",
			version:  "1.2.3.1",
			other:    "1.2.3.2",
			expected: -1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ours := MustParse(test.version)
			theirs := MustParse(test.other)

			assert.Equal(t, test.expected, ours.Compare(theirs))
			assert.Equal(t, test.expected < 0, ours.LessThan(theirs))
			assert.Equal(t, test.expected > 0, ours.GreaterThan(theirs))
			assert.Equal(t, test.expected == 0, ours.Equal(theirs))
		})
	}
}

func TestSemanticVersionString(t *testing.T) {
	assert.Equal(t, "2.1.0.0", MustParse("2.1").String())
}
