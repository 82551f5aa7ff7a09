package cmd

import (
	"fmt"

	"github.com/msallak/tharwa"
)

type addAssetStory struct{}

func (*addAssetStory) Name() string        { return "Add Asset" }
func (*addAssetStory) RequiresLogin() bool { return true }

func (*addAssetStory) Run(app *App, p *Prompter) error {
	p.Say("\n=== Add Asset ===")

	name, err := p.NonEmpty("Asset Name")
	if err != nil {
		return err
	}
	quantity, err := p.Positive("Quantity")
	if err != nil {
		return err
	}
	category, err := p.Category("Type (STOCKS/REAL_ESTATE/GOLD/CRYPTO)")
	if err != nil {
		return err
	}
	purchased, err := p.Date("Purchase Date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	price, err := p.Positive("Purchase Price")
	if err != nil {
		return err
	}

	asset, err := tharwa.NewAsset(name, quantity, category, purchased, price)
	if err != nil {
		// The prompts above guarantee the invariants; reaching this
		// would be a bug, not a user mistake.
		return fmt.Errorf("constructing asset: %w", err)
	}
	app.Portfolio.Add(asset)
	app.Log.Info().
		Str("asset", asset.Name).
		Str("category", string(asset.Category)).
		Float64("price", asset.PurchasePrice).
		Msg("asset added")
	p.Say("Asset added!")
	return nil
}
