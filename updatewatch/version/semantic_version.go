package version

import (
	"fmt"
	"strconv"
	"strings"
)

// componentCount is the fixed number of comparable fields in a SemanticVersion.
const componentCount = 4

// SemanticVersion is an ordered 4-tuple of non-negative integers parsed from a
// dotted version string (e.g. "2.4.1"). Source strings with fewer than four
// components are right-padded with zeros; components beyond the fourth do not
// participate in comparison (the Raw field retains them for diagnostics).
type SemanticVersion struct {
	Raw      string `json:"raw"`
	Major    int    `json:"major"`
	Minor    int    `json:"minor"`
	Patch    int    `json:"patch"`
	Revision int    `json:"revision"`
}

// Parse converts a dotted version string into a SemanticVersion.
func Parse(text string) (SemanticVersion, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return SemanticVersion{}, ErrEmptyVersion
	}

	fields := strings.Split(trimmed, ".")

	var components [componentCount]int
	for idx, field := range fields {
		// ParseUint rejects signs, so "+2" and "-0" are malformed like any
		// other non-digit component
		value, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return SemanticVersion{}, newMalformedComponentError(text, field, idx)
		}
		if idx < componentCount {
			components[idx] = int(value)
		}
	}

	return SemanticVersion{
		Raw:      text,
		Major:    components[0],
		Minor:    components[1],
		Patch:    components[2],
		Revision: components[3],
	}, nil
}

// MustParse is a Parse convenience that panics on malformed input (useful for
// fixed versions in tests and examples).
func MustParse(text string) SemanticVersion {
	ver, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("unable to parse version %q: %+v", text, err))
	}
	return ver
}

func (v SemanticVersion) components() [componentCount]int {
	return [componentCount]int{v.Major, v.Minor, v.Patch, v.Revision}
}

// Compare compares this version to another version.
// This returns -1, 0, or 1 if this version is smaller,
// equal, or larger than the other version, respectively.
func (v SemanticVersion) Compare(other SemanticVersion) int {
	ours, theirs := v.components(), other.components()
	for idx := 0; idx < componentCount; idx++ {
		switch {
		case ours[idx] < theirs[idx]:
			return -1
		case ours[idx] > theirs[idx]:
			return 1
		}
	}
	return 0
}

func (v SemanticVersion) LessThan(other SemanticVersion) bool {
	return v.Compare(other) < 0
}

func (v SemanticVersion) GreaterThan(other SemanticVersion) bool {
	return v.Compare(other) > 0
}

func (v SemanticVersion) Equal(other SemanticVersion) bool {
	return v.Compare(other) == 0
}

func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Revision)
}
