package tharwa

import (
	"fmt"
	"strings"

	"github.com/msallak/tharwa/date"
)

// Category classifies an asset for reporting and zakat eligibility.
type Category string

const (
	Stocks     Category = "STOCKS"
	RealEstate Category = "REAL_ESTATE"
	Gold       Category = "GOLD"
	Crypto     Category = "CRYPTO"
)

// Categories returns the closed set of valid categories, in menu order.
func Categories() []Category {
	return []Category{Stocks, RealEstate, Gold, Crypto}
}

// ParseCategory returns the canonical Category for s. The match is
// case-insensitive and surrounding spaces are ignored; anything outside
// the closed set is an error.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case Stocks, RealEstate, Gold, Crypto:
		return c, nil
	}
	return "", fmt.Errorf("invalid category %q: want one of %v", s, Categories())
}

// Asset is an immutable record of one purchased holding. Its identity
// for removal purposes is Name alone; several lots may share a name.
//
// PurchasePrice is the total amount paid for the lot, not a per-unit
// price: neither report totals nor the zakat base multiply it by
// Quantity.
type Asset struct {
	Name          string
	Quantity      float64
	Category      Category
	PurchaseDate  date.Date
	PurchasePrice float64
}

// NewAsset builds an Asset after checking the construction invariants:
// non-empty name, strictly positive quantity and price, a category from
// the closed set and a set purchase date. The interactive prompts
// guarantee these already; NewAsset is the last line of defense so an
// invalid asset can never reach the portfolio.
func NewAsset(name string, quantity float64, category Category, purchased date.Date, price float64) (Asset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Asset{}, fmt.Errorf("asset name cannot be empty")
	}
	if quantity <= 0 {
		return Asset{}, fmt.Errorf("asset quantity must be positive, got %v", quantity)
	}
	category, err := ParseCategory(string(category))
	if err != nil {
		return Asset{}, err
	}
	if purchased.IsZero() {
		return Asset{}, fmt.Errorf("asset purchase date must be set")
	}
	if price <= 0 {
		return Asset{}, fmt.Errorf("asset purchase price must be positive, got %v", price)
	}
	return Asset{
		Name:          name,
		Quantity:      quantity,
		Category:      category,
		PurchaseDate:  purchased,
		PurchasePrice: price,
	}, nil
}
