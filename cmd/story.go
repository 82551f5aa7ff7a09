package cmd

import (
	"fmt"
	"io"
	"strconv"
)

// Story is one entry of the interactive menu. Each user story declares
// whether it needs an authenticated session; the menu loop refuses to
// run a protected story while logged out.
type Story interface {
	Name() string
	RequiresLogin() bool
	Run(app *App, p *Prompter) error
}

// stories returns the menu in display order. Exit is handled by the
// loop itself and is always the last choice.
func stories() []Story {
	return []Story{
		&signUpStory{},
		&loginStory{},
		&addAssetStory{},
		&removeAssetStory{},
		&zakatStory{},
		&connectBankStory{},
		&connectStockStory{},
		&exportReportStory{},
	}
}

// Loop runs the interactive menu until the user exits or the input
// stream ends. Story errors are I/O errors only; every domain outcome
// is reported inside the story dialog.
func Loop(app *App, p *Prompter) error {
	p.Say("=== Investment Management System ===")
	menu := stories()
	exit := len(menu) + 1
	for {
		printMenu(p.out, menu)
		choice, err := p.Line("Choose an option")
		if err != nil {
			return err
		}
		n, aerr := strconv.Atoi(choice)
		if aerr != nil || n < 1 || n > exit {
			p.Say("Invalid input! Please enter a number 1-%d.", exit)
			continue
		}
		if n == exit {
			p.Say("\nThank you for using the system. Goodbye!")
			return nil
		}
		story := menu[n-1]
		if story.RequiresLogin() && !app.LoggedIn() {
			p.Say("Please login first!")
			continue
		}
		if err := story.Run(app, p); err != nil {
			return err
		}
	}
}

func printMenu(w io.Writer, menu []Story) {
	fmt.Fprintln(w, "\nMain Menu:")
	for i, s := range menu {
		fmt.Fprintf(w, "%d. %s\n", i+1, s.Name())
	}
	fmt.Fprintf(w, "%d. Exit\n", len(menu)+1)
}
