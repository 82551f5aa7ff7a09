package cmd

import "strings"

type connectBankStory struct{}

func (*connectBankStory) Name() string        { return "Connect Bank" }
func (*connectBankStory) RequiresLogin() bool { return true }

func (*connectBankStory) Run(app *App, p *Prompter) error {
	p.Say("\n=== Connect Bank Account ===")
	if banks, err := app.Connect.Banks(); err == nil && len(banks) > 0 {
		p.Say("Known banks: %s", strings.Join(banks, ", "))
	}

	bank, err := p.NonEmpty("Enter bank name")
	if err != nil {
		return err
	}
	challenge, cerr := app.Connect.BeginBankLink(bank)
	if cerr != nil {
		p.Say("Connection failed: %v", cerr)
		return nil
	}
	// No SMS in a simulation: show the code that would have been sent.
	p.Say("A one-time code was sent to your phone (simulation: %s)", challenge.Code)

	card, err := p.Line("Enter card number (16 digits)")
	if err != nil {
		return err
	}
	code, err := p.Line("Enter OTP (6 digits)")
	if err != nil {
		return err
	}

	link, cerr := app.Connect.CompleteBankLink(challenge, card, code)
	if cerr != nil {
		p.Say("Invalid input! Connection failed.")
		return nil
	}
	p.Say("Bank account connected successfully! (ref %s)", link.ID)
	return nil
}
