package cmd

import (
	"github.com/msallak/tharwa"
	"github.com/msallak/tharwa/date"
	"github.com/msallak/tharwa/renderer"
)

type zakatStory struct{}

func (*zakatStory) Name() string        { return "Calculate Zakat" }
func (*zakatStory) RequiresLogin() bool { return true }

func (*zakatStory) Run(app *App, p *Prompter) error {
	p.Say("\n=== Zakat Calculation ===")
	report := tharwa.NewZakatReport(date.Today(), app.Config.Currency, app.Portfolio.Assets())
	printMarkdown(p.out, renderer.ZakatMarkdown(report))
	return nil
}
