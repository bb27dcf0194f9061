package nbu

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"goldpost/internal/model"
)

const source = "nbu"

type Interaction struct {
	logger       *slog.Logger
	client       *http.Client
	endpoint     string
	currencyCode string
	headers      http.Header
}

// NewInteraction creates a new instance of Interaction with NBU.
func NewInteraction(logger *slog.Logger, client *http.Client, endpoint string, currencyCode string, headers http.Header) *Interaction {
	return &Interaction{
		logger:       logger.With("component", "nbu"),
		client:       client,
		endpoint:     endpoint,
		currencyCode: currencyCode,
		headers:      headers,
	}
}

// GetExchangeRate returns the official rate of hryvnias per one unit of the configured currency.
func (that *Interaction) GetExchangeRate(ctx context.Context) (ExchangeRate, error) {
	log := that.logger.With("method", "GetExchangeRate", "currency", that.currencyCode)

	target, err := url.Parse(that.endpoint)
	if err != nil {
		return ExchangeRate{}, model.NewFetchError(source, fmt.Errorf("%w: parse endpoint: %w", model.ErrConfig, err))
	}

	// NBU switches to JSON on a bare "json" key.
	target.RawQuery = "valcode=" + url.QueryEscape(that.currencyCode) + "&json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return ExchangeRate{}, model.NewFetchError(source, fmt.Errorf("create request: %w", err))
	}

	for key, values := range that.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := that.client.Do(req)
	if err != nil {
		return ExchangeRate{}, model.NewFetchError(source, fmt.Errorf("%w: do request: %w", model.ErrNetwork, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ExchangeRate{}, model.NewFetchError(source, fmt.Errorf("%w: bad status code: %d", model.ErrNetwork, resp.StatusCode))
	}

	rate, err := ParseExchangeRate(resp.Body)
	if err != nil {
		return ExchangeRate{}, model.NewFetchError(source, err)
	}

	log.Debug("got exchange rate", "rate", rate.Rate, "exchange_date", rate.GetDateTime().Format("2006-01-02"))
	return rate, nil
}
