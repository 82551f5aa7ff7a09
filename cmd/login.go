package cmd

type loginStory struct{}

func (*loginStory) Name() string        { return "Login" }
func (*loginStory) RequiresLogin() bool { return false }

func (*loginStory) Run(app *App, p *Prompter) error {
	p.Say("\n=== Login ===")
	username, err := p.Line("Username")
	if err != nil {
		return err
	}
	password, err := p.Line("Password")
	if err != nil {
		return err
	}

	if !app.Users.Authenticate(username, password) {
		app.Log.Warn().Str("user", username).Msg("failed login attempt")
		p.Say("Invalid credentials!")
		return nil
	}
	app.Login(username)
	p.Say("Login successful!")
	return nil
}
