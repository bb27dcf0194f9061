package nbu

import (
	"encoding/json"
	"fmt"
	"io"

	"goldpost/internal/model"
)

// exchangeRecord tells a missing rate apart from a zero one.
type exchangeRecord struct {
	ExchangeRate
	Rate *float64 `json:"rate"`
}

// ParseExchangeRate returns the first record of the NBU exchange directory.
func ParseExchangeRate(body io.Reader) (ExchangeRate, error) {
	var records []exchangeRecord
	if err := json.NewDecoder(body).Decode(&records); err != nil {
		return ExchangeRate{}, fmt.Errorf("%w: decode exchange rates: %w", model.ErrParse, err)
	}

	if len(records) == 0 {
		return ExchangeRate{}, fmt.Errorf("%w: exchange rates are empty", model.ErrParse)
	}

	record := records[0]
	if record.Rate == nil {
		return ExchangeRate{}, fmt.Errorf("%w: exchange rate has no rate field", model.ErrParse)
	}

	if *record.Rate <= 0 {
		return ExchangeRate{}, fmt.Errorf("%w: exchange rate %g is not positive", model.ErrValidation, *record.Rate)
	}

	rate := record.ExchangeRate
	rate.Rate = *record.Rate
	return rate, nil
}
