package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		input    string
		expected Option
	}{
		{input: "", expected: TablePresenter},
		{input: "table", expected: TablePresenter},
		{input: "json", expected: JSONPresenter},
		{input: "JSON", expected: JSONPresenter},
		{input: "yaml", expected: UnknownPresenter},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseOption(test.input))
		})
	}
}

func TestGetPresenter(t *testing.T) {
	assert.NotNil(t, GetPresenter(JSONPresenter, modelsDocumentFixture()))
	assert.NotNil(t, GetPresenter(TablePresenter, modelsDocumentFixture()))
	assert.Nil(t, GetPresenter(UnknownPresenter, modelsDocumentFixture()))
}
