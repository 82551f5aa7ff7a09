package cmd

import (
	"strings"

	"github.com/msallak/tharwa"
	"github.com/msallak/tharwa/date"
	"github.com/msallak/tharwa/renderer"
)

// exportExtensions maps the accepted format labels to the file name
// extension of the pretend export. The output itself stays textual.
var exportExtensions = map[string]string{
	"PDF":   ".pdf",
	"EXCEL": ".xlsx",
}

type exportReportStory struct{}

func (*exportReportStory) Name() string        { return "Export Report" }
func (*exportReportStory) RequiresLogin() bool { return true }

func (*exportReportStory) Run(app *App, p *Prompter) error {
	p.Say("\n=== Export Portfolio Report ===")

	format, err := p.Line("Enter format (PDF/EXCEL)")
	if err != nil {
		return err
	}
	format = strings.ToUpper(format)
	ext, ok := exportExtensions[format]
	if !ok {
		p.Say("Invalid format selected!")
		return nil
	}

	report := tharwa.NewReport(date.Today(), app.Config.Currency, app.Portfolio.Assets())
	app.Log.Info().Str("format", format).Int("assets", report.TotalAssets).Msg("report generated")

	p.Say("\nReport generated successfully!")
	p.Say("File: PortfolioReport%s", ext)
	printMarkdown(p.out, renderer.ReportMarkdown(report))
	return nil
}
