package cmd

type connectStockStory struct{}

func (*connectStockStory) Name() string        { return "Connect Stock" }
func (*connectStockStory) RequiresLogin() bool { return true }

func (*connectStockStory) Run(app *App, p *Prompter) error {
	p.Say("\n=== Connect Stock Brokerage ===")

	platform, err := p.NonEmpty("Enter platform name (BINANCE/THNDR)")
	if err != nil {
		return err
	}
	apiKey, err := p.Line("Enter API key")
	if err != nil {
		return err
	}

	link, cerr := app.Connect.LinkBroker(platform, apiKey)
	if cerr != nil {
		p.Say("Invalid credentials! Connection failed.")
		return nil
	}
	p.Say("Stock account connected successfully! (ref %s)", link.ID)
	return nil
}
