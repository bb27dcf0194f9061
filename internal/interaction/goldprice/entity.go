package goldprice

import (
	"goldpost/internal/pricing"
)

// RatesResponse describes the goldprice.org rates payload.
type RatesResponse struct {
	Date  string `json:"date"` // ex: Oct 19th 2026, 10:43:24 am NY
	Items []Rate `json:"items"`
}

// Rate describes the metal prices for one currency.
type Rate struct {
	Currency string  `json:"curr"`     // ex: USD
	XAUPrice float64 `json:"xauPrice"` // ex: 4213.45, per troy ounce
}

// PricePerGram returns the gold price per gram of the first item.
func (r RatesResponse) PricePerGram() float64 {
	return pricing.PerGram(r.Items[0].XAUPrice)
}

// Bounds is the plausible range of a spot price per gram.
type Bounds struct {
	Min float64
	Max float64
}

func (b Bounds) Contains(value float64) bool {
	return value >= b.Min && value <= b.Max
}
