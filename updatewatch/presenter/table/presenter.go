package table

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/updatewatch/updatewatch/updatewatch/presenter/models"
)

// Presenter is a table presentation object for the decision document
type Presenter struct {
	document models.Document
}

// NewPresenter creates a new table presenter
func NewPresenter(document models.Document) *Presenter {
	return &Presenter{
		document: document,
	}
}

// Present creates a human-readable table-based reporting
func (p *Presenter) Present(output io.Writer) error {
	if !p.document.Prompt {
		_, err := io.WriteString(output, "No upgrade prompt needed\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Installed", "Available", "Severity", "Frequency", "Actions"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	row := []string{
		p.document.Installed,
		p.document.Available,
		p.document.Severity,
		p.document.Frequency,
		strings.Join(p.document.Actions, " / "),
	}
	table.Rich(row, []tablewriter.Colors{{}, {}, getSeverityColor(p.document.Severity), {}, {}})

	table.Render()

	return nil
}

func getSeverityColor(severity string) tablewriter.Colors {
	severityFontType, severityColor := tablewriter.Normal, tablewriter.Normal

	switch strings.ToLower(severity) {
	case "force":
		severityFontType = tablewriter.Bold
		severityColor = tablewriter.FgRedColor
	case "option":
		severityColor = tablewriter.FgYellowColor
	case "skip":
		severityColor = tablewriter.FgGreenColor
	}

	return tablewriter.Colors{severityFontType, severityColor}
}
