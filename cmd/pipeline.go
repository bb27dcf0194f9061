package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"goldpost/internal/config"
	"goldpost/internal/interaction/goldprice"
	"goldpost/internal/interaction/nbu"
	"goldpost/internal/interaction/telegram"
	"goldpost/internal/usecases"
	"goldpost/locales"
)

// newPublishPricesUsecase wires the pipeline. A nil publisher means the Telegram one.
func newPublishPricesUsecase(publisher usecases.Publisher) (*usecases.PublishPricesUsecase, error) {
	loc, err := cnf.Post.Location()
	if err != nil {
		return nil, err
	}

	bundle, err := locales.GetBundle()
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}

	// Initialize HTTP clients
	sourcesClient := &http.Client{Timeout: cnf.HTTP.Timeout}
	telegramClient := &http.Client{Timeout: cnf.HTTP.Timeout}

	// Initialize interactions
	headers := cnf.HTTP.Headers()
	bounds := goldprice.Bounds{Min: cnf.Spot.MinPerGram, Max: cnf.Spot.MaxPerGram}

	var spotSource usecases.SpotSource
	switch cnf.Spot.Source {
	case config.SpotSourcePage:
		spotSource = goldprice.NewPageInteraction(logger, sourcesClient, cnf.Spot.PageURL, cnf.Spot.PageSelector, headers, bounds)
	default:
		spotSource = goldprice.NewInteraction(logger, sourcesClient, cnf.Spot.APIURL, headers, bounds)
	}

	rateSource := nbu.NewInteraction(logger, sourcesClient, cnf.Rate.URL, cnf.Rate.CurrencyCode, headers)
	serializer := telegram.NewSerializer(bundle, cnf.Post.Language, loc)

	if publisher == nil {
		telegramInteractor, err := telegram.NewInteraction(logger, cnf.Telegram.Token, cnf.Telegram.ServerURL, telegramClient)
		if err != nil {
			return nil, err
		}
		publisher = telegramInteractor
	}

	settings := usecases.PostSettings{
		ChatID:        cnf.Telegram.ChatID,
		ManagerHandle: cnf.Post.ManagerHandle,
		Discount:      cnf.Post.Discount,
		Grades:        cnf.Post.Grades,
	}

	return usecases.NewPublishPricesUsecase(logger, settings, spotSource, rateSource, serializer, publisher), nil
}

// printPublisher writes the post instead of sending it.
type printPublisher struct {
	w io.Writer
}

func (p printPublisher) SendPost(_ context.Context, _ string, text string) error {
	_, err := fmt.Fprintln(p.w, text)
	return err
}
