package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/msallak/tharwa"
	"github.com/msallak/tharwa/date"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestLine_TrimsSpace(t *testing.T) {
	p, _ := newTestPrompter("  hello  \n")
	got, err := p.Line("Anything")
	if err != nil {
		t.Fatalf("Line() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Line() = %q, want %q", got, "hello")
	}
}

func TestLine_EOF(t *testing.T) {
	p, _ := newTestPrompter("")
	if _, err := p.Line("Anything"); err != io.EOF {
		t.Errorf("Line() error = %v, want io.EOF", err)
	}
}

func TestNonEmpty_RetriesOnBlank(t *testing.T) {
	p, out := newTestPrompter("\n   \nsara\n")
	got, err := p.NonEmpty("Username")
	if err != nil {
		t.Fatalf("NonEmpty() error = %v", err)
	}
	if got != "sara" {
		t.Errorf("NonEmpty() = %q, want %q", got, "sara")
	}
	if n := strings.Count(out.String(), "Username cannot be empty!"); n != 2 {
		t.Errorf("empty warnings = %d, want 2", n)
	}
}

func TestPositive(t *testing.T) {
	p, out := newTestPrompter("abc\n-1\n0\n0.5\n")
	got, err := p.Positive("Quantity")
	if err != nil {
		t.Fatalf("Positive() error = %v", err)
	}
	if got != 0.5 {
		t.Errorf("Positive() = %v, want 0.5", got)
	}
	if n := strings.Count(out.String(), "Invalid quantity!"); n != 3 {
		t.Errorf("invalid warnings = %d, want 3", n)
	}
}

func TestDate_RetriesOnBadFormat(t *testing.T) {
	p, out := newTestPrompter("01/01/2023\n2023-01-01\n")
	got, err := p.Date("Purchase Date (YYYY-MM-DD)")
	if err != nil {
		t.Fatalf("Date() error = %v", err)
	}
	if got != date.MustParse("2023-01-01") {
		t.Errorf("Date() = %v, want 2023-01-01", got)
	}
	if !strings.Contains(out.String(), "Invalid date format! Use YYYY-MM-DD.") {
		t.Error("missing the bad format warning")
	}
}

func TestCategory(t *testing.T) {
	p, out := newTestPrompter("BONDS\ngold\n")
	got, err := p.Category("Type")
	if err != nil {
		t.Fatalf("Category() error = %v", err)
	}
	if got != tharwa.Gold {
		t.Errorf("Category() = %q, want %q", got, tharwa.Gold)
	}
	if !strings.Contains(out.String(), "Invalid asset type!") {
		t.Error("missing the invalid type warning")
	}
}

func TestValid_PasswordPolicy(t *testing.T) {
	// Too short, no uppercase, no digit, then acceptable.
	p, out := newTestPrompter("Ab1\npassword1\nPassword\nPassw0rd1\n")
	got, err := p.Valid("Password", "required,min=8,hasupper,hasdigit", "Invalid password format!")
	if err != nil {
		t.Fatalf("Valid() error = %v", err)
	}
	if got != "Passw0rd1" {
		t.Errorf("Valid() = %q, want %q", got, "Passw0rd1")
	}
	if n := strings.Count(out.String(), "Invalid password format!"); n != 3 {
		t.Errorf("rejections = %d, want 3", n)
	}
}
