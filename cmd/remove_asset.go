package cmd

type removeAssetStory struct{}

func (*removeAssetStory) Name() string        { return "Remove Asset" }
func (*removeAssetStory) RequiresLogin() bool { return true }

func (*removeAssetStory) Run(app *App, p *Prompter) error {
	p.Say("\n=== Remove Asset ===")
	name, err := p.Line("Enter asset name to remove")
	if err != nil {
		return err
	}

	if !app.Portfolio.Remove(name) {
		p.Say("Asset not found!")
		return nil
	}
	app.Log.Info().Str("asset", name).Msg("asset removed")
	p.Say("Asset removed successfully!")
	return nil
}
