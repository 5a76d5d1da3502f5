package advisory

import "strings"

const (
	UnknownFrequency Frequency = iota
	Immediately
	Daily
	Weekly
)

// Frequency is how often the caller should re-run the upgrade check. It is
// carried alongside the severity decision as data; the advisor itself never
// schedules anything.
type Frequency int

var frequencyStr = []string{
	"UnknownFrequency",
	"Immediately",
	"Daily",
	"Weekly",
}

var Frequencies = []Frequency{
	Immediately,
	Daily,
	Weekly,
}

func ParseFrequency(userStr string) Frequency {
	switch strings.ToLower(strings.TrimSpace(userStr)) {
	case strings.ToLower(Immediately.String()):
		return Immediately
	case strings.ToLower(Daily.String()):
		return Daily
	case strings.ToLower(Weekly.String()):
		return Weekly
	}
	return UnknownFrequency
}

func (f Frequency) String() string {
	if int(f) >= len(frequencyStr) || f < 0 {
		return frequencyStr[0]
	}

	return frequencyStr[f]
}
