package tharwa

import "strings"

// ZakatRate is the standard levy rate applied to the eligible base.
const ZakatRate = 0.025

// CalculateZakat returns the zakat due on the given assets: the sum of
// purchase prices over every non-crypto asset, multiplied by ZakatRate.
// An empty snapshot yields 0.
//
// The category comparison is case-insensitive, so a literal "crypto"
// that bypassed ParseCategory is excluded all the same; any other
// literal value, even outside the closed set, counts toward the base.
// The result carries full float64 precision: rounding to two decimals
// is a display concern.
func CalculateZakat(assets []Asset) float64 {
	return zakatBase(assets) * ZakatRate
}

// zakatBase sums the purchase price of every eligible asset.
func zakatBase(assets []Asset) float64 {
	var base float64
	for _, a := range assets {
		if strings.EqualFold(string(a.Category), string(Crypto)) {
			continue
		}
		base += a.PurchasePrice
	}
	return base
}
