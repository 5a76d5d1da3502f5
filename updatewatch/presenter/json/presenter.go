package json

import (
	"encoding/json"
	"io"

	"github.com/updatewatch/updatewatch/updatewatch/presenter/models"
)

// Presenter is a JSON presentation object for the decision document
type Presenter struct {
	document models.Document
}

// NewPresenter creates a new JSON presenter
func NewPresenter(document models.Document) *Presenter {
	return &Presenter{
		document: document,
	}
}

// Present creates a JSON-based reporting
func (p *Presenter) Present(output io.Writer) error {
	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&p.document)
}
