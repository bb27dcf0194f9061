package goldprice

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"goldpost/internal/model"
)

var numberPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ParseRates decodes the rates payload. The first item is guaranteed to carry a gold price.
func ParseRates(body io.Reader) (RatesResponse, error) {
	var resp RatesResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return RatesResponse{}, fmt.Errorf("%w: decode rates: %w", model.ErrParse, err)
	}

	if len(resp.Items) == 0 {
		return RatesResponse{}, fmt.Errorf("%w: rates have no items", model.ErrParse)
	}

	if resp.Items[0].XAUPrice == 0 {
		return RatesResponse{}, fmt.Errorf("%w: rates have no xauPrice", model.ErrParse)
	}

	return resp, nil
}

// ParsePage returns the price of one gram of gold from the text of the first node matching selector.
func ParsePage(body io.Reader, selector string) (float64, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return 0, fmt.Errorf("%w: parse html: %w", model.ErrParse, err)
	}

	node := doc.Find(selector).First()
	if node.Length() == 0 {
		return 0, fmt.Errorf("%w: no node matches %q", model.ErrParse, selector)
	}

	text := node.Text()
	price, err := strconv.ParseFloat(cleanNumber(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not a number", model.ErrParse, strings.TrimSpace(text))
	}

	return price, nil
}

// Validate rejects a price per gram outside the bounds instead of clamping it.
func Validate(pricePerGram float64, bounds Bounds) error {
	if !bounds.Contains(pricePerGram) {
		return fmt.Errorf("%w: price per gram %.4f is outside [%g, %g]", model.ErrValidation, pricePerGram, bounds.Min, bounds.Max)
	}

	return nil
}

// cleanNumber extracts the first number and drops thousands separators: "$4,213.45 /oz" -> "4213.45".
func cleanNumber(s string) string {
	return strings.ReplaceAll(numberPattern.FindString(s), ",", "")
}
