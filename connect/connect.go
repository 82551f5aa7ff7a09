// Package connect simulates linking external bank and brokerage
// accounts. Nothing leaves the process: directory lookups, one-time
// codes and link records are local stand-ins for a real aggregator
// flow, but the input rules (card number, OTP and API key formats) are
// enforced for real.
package connect

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/rs/zerolog"
)

// Service drives the simulated linking flows.
type Service struct {
	dir *Directory
	v   *validator.Validate
	log zerolog.Logger
}

// NewService loads the institutions catalogue and returns a ready
// linking service.
func NewService(log zerolog.Logger) (*Service, error) {
	dir, err := NewDirectory()
	if err != nil {
		return nil, err
	}
	return &Service{dir: dir, v: validator.New(), log: log}, nil
}

// Banks returns the names of the banks known to the catalogue, sorted.
func (s *Service) Banks() ([]string, error) { return s.dir.Banks() }

// BankChallenge is a pending bank link. The user must echo the one-time
// code back to complete it. The code is TOTP-generated, and in this
// simulation it is exposed so the caller can display it in place of an
// SMS. The challenge accepts exactly the code it displayed, however
// long the dialog takes.
type BankChallenge struct {
	ID   uuid.UUID
	Bank string
	Code string
}

// BeginBankLink opens a link challenge with the named bank. Any
// non-empty bank name is accepted, known to the catalogue or not.
func (s *Service) BeginBankLink(bank string) (*BankChallenge, error) {
	bank = strings.TrimSpace(bank)
	if bank == "" {
		return nil, fmt.Errorf("bank name cannot be empty")
	}
	key, err := totp.Generate(totp.GenerateOpts{Issuer: bank, AccountName: "tharwa"})
	if err != nil {
		return nil, fmt.Errorf("generating one-time code: %w", err)
	}
	code, err := totp.GenerateCode(key.Secret(), time.Now())
	if err != nil {
		return nil, fmt.Errorf("generating one-time code: %w", err)
	}
	ch := &BankChallenge{ID: uuid.New(), Bank: bank, Code: code}
	s.log.Debug().Str("bank", bank).Stringer("challenge", ch.ID).Msg("bank link challenge issued")
	return ch, nil
}

// BankLink records a completed bank connection.
type BankLink struct {
	ID        uuid.UUID
	Bank      string
	CardLast4 string
	LinkedAt  time.Time
}

// bankLinkInput carries the values a real aggregator would require.
// "number" means digits only; "numeric" would let signs and decimal
// points through.
type bankLinkInput struct {
	Bank string `validate:"required"`
	Card string `validate:"required,number,len=16"`
	OTP  string `validate:"required,number,len=6"`
}

// CompleteBankLink verifies the card number format and the one-time
// code against the challenge, and returns the established link.
func (s *Service) CompleteBankLink(ch *BankChallenge, card, code string) (*BankLink, error) {
	in := bankLinkInput{Bank: ch.Bank, Card: strings.TrimSpace(card), OTP: strings.TrimSpace(code)}
	if err := s.v.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(in.OTP), []byte(ch.Code)) != 1 {
		return nil, fmt.Errorf("one-time code rejected")
	}
	link := &BankLink{
		ID:        uuid.New(),
		Bank:      ch.Bank,
		CardLast4: in.Card[len(in.Card)-4:],
		LinkedAt:  time.Now(),
	}
	s.log.Info().Str("bank", ch.Bank).Str("card", "************"+link.CardLast4).Msg("bank account connected")
	return link, nil
}

// BrokerLink records a completed brokerage connection.
type BrokerLink struct {
	ID       uuid.UUID
	Platform string
	LinkedAt time.Time
}

type brokerLinkInput struct {
	Platform string `validate:"required,alpha"`
	APIKey   string `validate:"required"`
}

// LinkBroker validates the platform against the catalogue, checks the
// API key length rule the platform declares, and returns the link.
func (s *Service) LinkBroker(platform, apiKey string) (*BrokerLink, error) {
	in := brokerLinkInput{Platform: strings.TrimSpace(platform), APIKey: strings.TrimSpace(apiKey)}
	if err := s.v.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	p, err := s.dir.Platform(in.Platform)
	if err != nil {
		return nil, err
	}
	if len(in.APIKey) < p.MinKeyLength {
		return nil, fmt.Errorf("API key for %s must be at least %d characters", p.Name, p.MinKeyLength)
	}
	link := &BrokerLink{ID: uuid.New(), Platform: p.Name, LinkedAt: time.Now()}
	s.log.Info().Str("platform", p.Name).Str("kind", p.Kind).Msg("brokerage account connected")
	return link, nil
}
