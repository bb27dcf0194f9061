package nbu_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldpost/internal/interaction/nbu"
	"goldpost/internal/model"
	"goldpost/testing/suite"
)

func Test_GetExchangeRate(t *testing.T) {
	r := suite.NewRecorder(t)

	interaction := nbu.NewInteraction(slog.Default(), r.GetDefaultClient(), "https://bank.gov.ua/NBUStatService/v1/statdirectory/exchange", "USD", http.Header{})

	rate, err := interaction.GetExchangeRate(context.Background())
	require.NoError(t, err)

	expectedRate := nbu.ExchangeRate{Code: 840, Name: "Долар США", Rate: 41.7582, CurrencyCode: "USD", ExchangeDate: "20.10.2026"}
	require.Equal(t, expectedRate, rate)
	require.Equal(t, time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC), rate.GetDateTime())
}

func Test_GetExchangeRate_Failures(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "bad status code", status: http.StatusInternalServerError, body: `[]`, expected: model.ErrNetwork},
		{name: "not found", status: http.StatusNotFound, body: `not found`, expected: model.ErrNetwork},
		{name: "not an array", status: http.StatusOK, body: `{"rate":41.7}`, expected: model.ErrParse},
		{name: "empty array", status: http.StatusOK, body: `[]`, expected: model.ErrParse},
		{name: "missing rate", status: http.StatusOK, body: `[{"r030":978,"cc":"EUR","exchangedate":"20.10.2026"}]`, expected: model.ErrParse},
		{name: "null rate", status: http.StatusOK, body: `[{"cc":"EUR","rate":null}]`, expected: model.ErrParse},
		{name: "zero rate", status: http.StatusOK, body: `[{"cc":"USD","rate":0}]`, expected: model.ErrValidation},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Then: The currency code is requested in JSON
				assert.Equal(t, "valcode=EUR&json", r.URL.RawQuery)

				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			}))
			t.Cleanup(server.Close)

			interaction := nbu.NewInteraction(slog.Default(), server.Client(), server.URL, "EUR", http.Header{})

			_, err := interaction.GetExchangeRate(context.Background())
			require.ErrorIs(t, err, c.expected)

			var fetchErr *model.FetchError
			require.ErrorAs(t, err, &fetchErr)
			require.Equal(t, "nbu", fetchErr.Source)
		})
	}
}
