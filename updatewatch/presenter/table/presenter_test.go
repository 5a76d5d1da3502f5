package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/updatewatch/updatewatch/updatewatch/advisory"
	"github.com/updatewatch/updatewatch/updatewatch/presenter/models"
)

func TestTablePresenter(t *testing.T) {
	var buffer bytes.Buffer

	document := models.NewDocument("2.1.0", "2.9.0", advisory.Decision{
		Severity:  advisory.ForceSeverity,
		Frequency: advisory.Immediately,
	})

	pres := NewPresenter(document)
	require.NoError(t, pres.Present(&buffer))

	actual := buffer.String()
	assert.Contains(t, actual, "2.1.0")
	assert.Contains(t, actual, "2.9.0")
	assert.Contains(t, actual, "Force")
	assert.Contains(t, actual, "Immediately")
	assert.Contains(t, actual, advisory.ActionUpdate)
}

func TestTablePresenterNoPrompt(t *testing.T) {
	var buffer bytes.Buffer

	document := models.NewDocument("2.1.0", "2.2.0", advisory.Decision{
		Severity:  advisory.NoneSeverity,
		Frequency: advisory.Daily,
	})

	pres := NewPresenter(document)
	require.NoError(t, pres.Present(&buffer))

	assert.Equal(t, "No upgrade prompt needed\n", buffer.String())
}
