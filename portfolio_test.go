package tharwa

import (
	"slices"
	"testing"

	"github.com/msallak/tharwa/date"
)

func TestPortfolio_PreservesInsertionOrder(t *testing.T) {
	p := NewPortfolio()
	p.Add(lot("AAPL", Stocks, 100))
	p.Add(lot("FLAT", RealEstate, 250000))
	p.Add(lot("KRUGERRAND", Gold, 2000))

	got := names(p.Assets())
	want := []string{"AAPL", "FLAT", "KRUGERRAND"}
	if !slices.Equal(got, want) {
		t.Errorf("Assets() order = %v, want %v", got, want)
	}
}

func TestPortfolio_RemoveFirstMatch(t *testing.T) {
	p := NewPortfolio()
	p.Add(lot("GOLD-LOT", Gold, 100))
	p.Add(lot("GOLD-LOT", Gold, 200))

	if !p.Remove("GOLD-LOT") {
		t.Fatal("Remove() first call = false, want true")
	}
	left := p.Assets()
	if len(left) != 1 || left[0].PurchasePrice != 200 {
		t.Errorf("after first Remove(), assets = %v, want the second lot (price 200)", left)
	}

	if !p.Remove("GOLD-LOT") {
		t.Error("Remove() second call = false, want true")
	}
	if p.Remove("GOLD-LOT") {
		t.Error("Remove() third call = true, want false")
	}
}

func TestPortfolio_RemoveUnknownLeavesStateUntouched(t *testing.T) {
	p := NewPortfolio()
	p.Add(lot("AAPL", Stocks, 100))
	p.Add(lot("BTC", Crypto, 200))

	if p.Remove("nonexistent") {
		t.Error("Remove(nonexistent) = true, want false")
	}
	got := names(p.Assets())
	want := []string{"AAPL", "BTC"}
	if !slices.Equal(got, want) {
		t.Errorf("Assets() after miss = %v, want %v", got, want)
	}
}

func TestPortfolio_RemoveIsCaseSensitive(t *testing.T) {
	p := NewPortfolio()
	p.Add(lot("AAPL", Stocks, 100))

	if p.Remove("aapl") {
		t.Error("Remove(aapl) = true, want false: match is case-sensitive")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPortfolio_SnapshotIsIndependent(t *testing.T) {
	p := NewPortfolio()
	p.Add(lot("AAPL", Stocks, 100))

	snapshot := p.Assets()
	snapshot[0].Name = "MUTATED"
	snapshot = append(snapshot, lot("EXTRA", Gold, 1))
	_ = snapshot

	got := p.Assets()
	if len(got) != 1 || got[0].Name != "AAPL" {
		t.Errorf("Assets() after snapshot mutation = %v, want the original single AAPL", got)
	}
}

// End-to-end walk of the documented scenario.
func TestPortfolio_Scenario(t *testing.T) {
	p := NewPortfolio()
	p.Add(Asset{Name: "AAPL", Quantity: 10, Category: Stocks, PurchaseDate: date.MustParse("2023-01-01"), PurchasePrice: 1500.0})
	p.Add(Asset{Name: "BTC", Quantity: 0.5, Category: Crypto, PurchaseDate: date.MustParse("2023-02-01"), PurchasePrice: 20000.0})

	if got := p.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got, want := CalculateZakat(p.Assets()), 37.5; got != want {
		t.Errorf("CalculateZakat() = %v, want %v", got, want)
	}
	if !p.Remove("AAPL") {
		t.Error("Remove(AAPL) = false, want true")
	}
	if got := p.Len(); got != 1 {
		t.Errorf("Len() after Remove = %d, want 1", got)
	}
}
