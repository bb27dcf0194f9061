package goldprice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"goldpost/internal/model"
)

// fetch issues a GET with the given headers and hands the body to parse.
func fetch[T any](ctx context.Context, client *http.Client, target string, headers http.Header, parse func(io.Reader) (T, error)) (T, error) {
	var empty T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return empty, fmt.Errorf("create request: %w", err)
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return empty, fmt.Errorf("%w: do request: %w", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return empty, fmt.Errorf("%w: bad status code: %d", model.ErrNetwork, resp.StatusCode)
	}

	return parse(resp.Body)
}

// Interaction reads the spot price from the goldprice.org JSON API.
type Interaction struct {
	logger   *slog.Logger
	client   *http.Client
	endpoint string
	headers  http.Header
	bounds   Bounds
}

// NewInteraction creates a new instance of Interaction with the goldprice.org API.
func NewInteraction(logger *slog.Logger, client *http.Client, endpoint string, headers http.Header, bounds Bounds) *Interaction {
	return &Interaction{
		logger:   logger.With("component", "goldprice"),
		client:   client,
		endpoint: endpoint,
		headers:  headers,
		bounds:   bounds,
	}
}

func (that *Interaction) Name() string {
	return "goldprice"
}

// GetSpotPrice returns the price of one gram of pure gold in USD.
func (that *Interaction) GetSpotPrice(ctx context.Context) (float64, error) {
	log := that.logger.With("method", "GetSpotPrice")

	rates, err := fetch(ctx, that.client, that.endpoint, that.headers, ParseRates)
	if err != nil {
		return 0, model.NewFetchError(that.Name(), err)
	}

	price := rates.PricePerGram()
	if err = Validate(price, that.bounds); err != nil {
		return 0, model.NewFetchError(that.Name(), err)
	}

	log.Debug("got spot price", "usd_per_gram", price, "quote_date", rates.Date)
	return price, nil
}

// PageInteraction scrapes the spot price per gram from an HTML page.
type PageInteraction struct {
	logger   *slog.Logger
	client   *http.Client
	endpoint string
	selector string
	headers  http.Header
	bounds   Bounds
}

// NewPageInteraction creates a new instance of PageInteraction.
func NewPageInteraction(logger *slog.Logger, client *http.Client, endpoint string, selector string, headers http.Header, bounds Bounds) *PageInteraction {
	return &PageInteraction{
		logger:   logger.With("component", "goldprice_page"),
		client:   client,
		endpoint: endpoint,
		selector: selector,
		headers:  headers,
		bounds:   bounds,
	}
}

func (that *PageInteraction) Name() string {
	return "goldprice_page"
}

// GetSpotPrice returns the price of one gram of pure gold in USD.
func (that *PageInteraction) GetSpotPrice(ctx context.Context) (float64, error) {
	log := that.logger.With("method", "GetSpotPrice")

	price, err := fetch(ctx, that.client, that.endpoint, that.headers, func(body io.Reader) (float64, error) {
		return ParsePage(body, that.selector)
	})
	if err != nil {
		return 0, model.NewFetchError(that.Name(), err)
	}

	if err = Validate(price, that.bounds); err != nil {
		return 0, model.NewFetchError(that.Name(), err)
	}

	log.Debug("got spot price", "usd_per_gram", price)
	return price, nil
}
