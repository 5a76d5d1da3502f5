package presenter

import "strings"

const (
	UnknownPresenter Option = iota
	JSONPresenter
	TablePresenter
)

var optionStr = []string{
	"UnknownPresenter",
	"json",
	"table",
}

// Options is a list of presenter format options available to users.
var Options = []Option{
	JSONPresenter,
	TablePresenter,
}

// Option is a dedicated type to represent a specific kind of presenter output format.
type Option int

// ParseOption returns the presenter.Option specified by the given user input.
func ParseOption(userStr string) Option {
	switch strings.ToLower(userStr) {
	case "":
		return TablePresenter
	case strings.ToLower(JSONPresenter.String()):
		return JSONPresenter
	case strings.ToLower(TablePresenter.String()):
		return TablePresenter
	default:
		return UnknownPresenter
	}
}

func (o Option) String() string {
	if int(o) >= len(optionStr) || o < 0 {
		return optionStr[0]
	}

	return optionStr[o]
}
