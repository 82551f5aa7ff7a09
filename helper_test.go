package tharwa

import "github.com/msallak/tharwa/date"

// lot is a helper for tests to build a valid asset with defaults.
func lot(name string, c Category, price float64) Asset {
	return Asset{
		Name:          name,
		Quantity:      1,
		Category:      c,
		PurchaseDate:  date.MustParse("2023-01-01"),
		PurchasePrice: price,
	}
}

// names extracts the asset names of a snapshot, in order.
func names(assets []Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.Name)
	}
	return out
}
