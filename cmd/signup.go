package cmd

type signUpStory struct{}

func (*signUpStory) Name() string        { return "Sign Up" }
func (*signUpStory) RequiresLogin() bool { return false }

func (*signUpStory) Run(app *App, p *Prompter) error {
	p.Say("\n=== Sign Up ===")

	var username string
	for {
		u, err := p.NonEmpty("Username")
		if err != nil {
			return err
		}
		if app.Users.Exists(u) {
			p.Say("Username already exists!")
			continue
		}
		username = u
		break
	}

	password, err := p.Valid(
		"Password (min 8 chars, 1 uppercase, 1 number)",
		"required,min=8,hasupper,hasdigit",
		"Invalid password format!",
	)
	if err != nil {
		return err
	}

	if err := app.Users.Register(username, password); err != nil {
		p.Say("%v", err)
		return nil
	}
	app.Log.Info().Str("user", username).Msg("account created")
	p.Say("Account created!")
	return nil
}
