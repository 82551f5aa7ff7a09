package renderer

import (
	"fmt"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// funcs returns the helper functions available to the templates.
func funcs() template.FuncMap {
	return template.FuncMap{
		"amount":   Amount,
		"percent":  Percent,
		"quantity": Quantity,
	}
}

// Amount formats a monetary value with the currency symbol and the
// currency's usual number of decimals ("$37.50" for 37.5 USD).
// It accepts the two value kinds reports carry: float64 and
// decimal.Decimal.
func Amount(value any, currency string) string {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case float64:
		d = decimal.NewFromFloat(v)
	default:
		return fmt.Sprintf("%v %s", value, currency)
	}
	// Calling the money constructor is the way to get a never-nil
	// currency, even for codes outside the ISO table.
	cur := *money.New(0, currency).Currency()
	units := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(units.IntPart())
}

// Percent formats a rate ("0.025") as a percentage ("2.5%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.4g%%", rate*100)
}

// Quantity formats a unit count with two decimals, the way the report
// displays holdings.
func Quantity(q float64) string {
	return fmt.Sprintf("%.2f", q)
}
