package nbu

import (
	"time"
)

// DateLayout is a date layout used in the NBU.
const DateLayout = "02.01.2006"

// ExchangeRate describes an official NBU exchange rate.
type ExchangeRate struct {
	Code         int     `json:"r030"`         // ex: 840
	Name         string  `json:"txt"`          // ex: Долар США
	Rate         float64 `json:"rate"`         // ex: 41.7582, hryvnias per unit
	CurrencyCode string  `json:"cc"`           // ex: USD
	ExchangeDate string  `json:"exchangedate"` // ex: 20.10.2026
}

// GetDateTime returns a time.Time object from the ExchangeDate field.
func (r *ExchangeRate) GetDateTime() time.Time {
	date, _ := time.Parse(DateLayout, r.ExchangeDate)
	return date
}
