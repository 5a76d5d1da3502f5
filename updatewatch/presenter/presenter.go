package presenter

import (
	"io"

	"github.com/updatewatch/updatewatch/updatewatch/presenter/json"
	"github.com/updatewatch/updatewatch/updatewatch/presenter/models"
	"github.com/updatewatch/updatewatch/updatewatch/presenter/table"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option.
func GetPresenter(option Option, document models.Document) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter(document)
	case TablePresenter:
		return table.NewPresenter(document)
	default:
		return nil
	}
}
