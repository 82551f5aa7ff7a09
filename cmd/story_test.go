package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := Config{Currency: "USD", LogLevel: "disabled", LogPlain: true, logWriter: io.Discard}
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

// runSession feeds a scripted dialog through the menu loop and returns
// everything it printed.
func runSession(t *testing.T, app *App, script string) string {
	t.Helper()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(script), &out)
	if err := Loop(app, p); err != nil {
		t.Fatalf("Loop() error = %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func TestLoop_FullSession(t *testing.T) {
	app := newTestApp(t)

	script := strings.Join([]string{
		"3", // add asset while logged out
		"1", "sara", "Passw0rd1", // sign up
		"2", "sara", "Passw0rd1", // login
		"3", "AAPL", "10", "STOCKS", "2023-01-01", "1500", // add
		"3", "BTC", "0.5", "CRYPTO", "2023-02-01", "20000", // add
		"5",         // zakat
		"4", "AAPL", // remove
		"8", "PDF", // export
		"9", // exit
	}, "\n") + "\n"

	out := runSession(t, app, script)

	for _, fragment := range []string{
		"Please login first!",
		"Account created!",
		"Login successful!",
		"Asset added!",
		"$37.50",
		"Asset removed successfully!",
		"Report generated successfully!",
		"File: PortfolioReport.pdf",
		"Thank you for using the system. Goodbye!",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("session output missing %q\noutput:\n%s", fragment, out)
		}
	}

	if app.Portfolio.Len() != 1 {
		t.Errorf("Portfolio.Len() = %d after the session, want 1", app.Portfolio.Len())
	}
	if !app.LoggedIn() {
		t.Error("LoggedIn() = false after the session, want true")
	}
	if app.Session().Username != "sara" {
		t.Errorf("session user = %q, want sara", app.Session().Username)
	}
}

func TestLoop_RejectsBadMenuInput(t *testing.T) {
	app := newTestApp(t)
	out := runSession(t, app, "abc\n42\n0\n9\n")

	if n := strings.Count(out, "Invalid input! Please enter a number 1-9."); n != 3 {
		t.Errorf("invalid input warnings = %d, want 3\noutput:\n%s", n, out)
	}
}

func TestLoop_InvalidCredentials(t *testing.T) {
	app := newTestApp(t)
	out := runSession(t, app, "2\nsara\nPassw0rd1\n9\n")

	if !strings.Contains(out, "Invalid credentials!") {
		t.Errorf("output missing the rejection:\n%s", out)
	}
	if app.LoggedIn() {
		t.Error("LoggedIn() = true after a failed login, want false")
	}
}

func TestLoop_DuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	script := "1\nsara\nPassw0rd1\n" + // first sign up
		"1\nsara\nomar\nPassw0rd1\n" + // taken, retry with a free name
		"9\n"
	out := runSession(t, app, script)

	if !strings.Contains(out, "Username already exists!") {
		t.Errorf("output missing the duplicate warning:\n%s", out)
	}
	if !app.Users.Exists("omar") {
		t.Error("Exists(omar) = false, want true")
	}
}

func TestLoop_RemoveUnknownAsset(t *testing.T) {
	app := newTestApp(t)
	app.Login("sara")
	out := runSession(t, app, "4\nTSLA\n9\n")

	if !strings.Contains(out, "Asset not found!") {
		t.Errorf("output missing the not-found notice:\n%s", out)
	}
}

func TestLoop_ConnectStock(t *testing.T) {
	app := newTestApp(t)
	app.Login("sara")
	key := strings.Repeat("k", 20)
	out := runSession(t, app, "7\nBINANCE\n"+key+"\n9\n")

	if !strings.Contains(out, "Stock account connected successfully!") {
		t.Errorf("output missing the success notice:\n%s", out)
	}
}

func TestLoop_ConnectStockRejectsShortKey(t *testing.T) {
	app := newTestApp(t)
	app.Login("sara")
	out := runSession(t, app, "7\nBINANCE\nshortkey\n9\n")

	if !strings.Contains(out, "Invalid credentials! Connection failed.") {
		t.Errorf("output missing the rejection:\n%s", out)
	}
}

func TestLoop_ConnectBankRejectsBadCard(t *testing.T) {
	app := newTestApp(t)
	app.Login("sara")
	out := runSession(t, app, "6\nHSBC\n1234\n000000\n9\n")

	if !strings.Contains(out, "A one-time code was sent to your phone") {
		t.Errorf("output missing the code notice:\n%s", out)
	}
	if !strings.Contains(out, "Invalid input! Connection failed.") {
		t.Errorf("output missing the rejection:\n%s", out)
	}
}

func TestLoop_ExportRejectsUnknownFormat(t *testing.T) {
	app := newTestApp(t)
	app.Login("sara")
	out := runSession(t, app, "8\nCSV\n9\n")

	if !strings.Contains(out, "Invalid format selected!") {
		t.Errorf("output missing the rejection:\n%s", out)
	}
}

func TestLoop_EndsCleanlyOnEOF(t *testing.T) {
	app := newTestApp(t)
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\nsara\n"), &out)
	if err := Loop(app, p); err != io.EOF {
		t.Errorf("Loop() error = %v, want io.EOF", err)
	}
}
