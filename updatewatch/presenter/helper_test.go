package presenter

import (
	"github.com/updatewatch/updatewatch/updatewatch/advisory"
	"github.com/updatewatch/updatewatch/updatewatch/presenter/models"
)

func modelsDocumentFixture() models.Document {
	return models.NewDocument("2.1.0", "2.4.0", advisory.Decision{
		Severity:  advisory.OptionSeverity,
		Frequency: advisory.Daily,
	})
}
