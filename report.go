package tharwa

import (
	"github.com/msallak/tharwa/date"
	"github.com/shopspring/decimal"
)

// Report is a point-in-time summary of the portfolio, ready for
// rendering. The total covers every asset regardless of category.
type Report struct {
	Date        date.Date
	Currency    string
	TotalAssets int
	TotalValue  decimal.Decimal
	Lines       []ReportLine
}

// ReportLine describes one asset of the report.
type ReportLine struct {
	Name      string
	Category  Category
	Quantity  float64
	Purchased date.Date
	Value     decimal.Decimal
}

// NewReport builds the portfolio summary for the given snapshot.
// Per-asset values and the grand total are carried as decimals so the
// rendered figures do not accumulate binary floating point noise.
func NewReport(on date.Date, currency string, assets []Asset) *Report {
	r := &Report{Date: on, Currency: currency, TotalAssets: len(assets)}
	total := decimal.Zero
	for _, a := range assets {
		v := decimal.NewFromFloat(a.PurchasePrice)
		total = total.Add(v)
		r.Lines = append(r.Lines, ReportLine{
			Name:      a.Name,
			Category:  a.Category,
			Quantity:  a.Quantity,
			Purchased: a.PurchaseDate,
			Value:     v,
		})
	}
	r.TotalValue = total
	return r
}

// ZakatReport is the result of a zakat calculation over a snapshot.
type ZakatReport struct {
	Date     date.Date
	Currency string
	Rate     float64
	Base     float64 // eligible base: purchase prices of non-crypto assets
	Due      float64
}

// NewZakatReport computes the zakat due on the snapshot.
func NewZakatReport(on date.Date, currency string, assets []Asset) *ZakatReport {
	base := zakatBase(assets)
	return &ZakatReport{
		Date:     on,
		Currency: currency,
		Rate:     ZakatRate,
		Base:     base,
		Due:      base * ZakatRate,
	}
}
