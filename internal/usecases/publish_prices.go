package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"goldpost/internal/interaction/nbu"
	"goldpost/internal/model"
	"goldpost/internal/pricing"
)

type SpotSource interface {
	Name() string
	GetSpotPrice(ctx context.Context) (float64, error)
}

type RateSource interface {
	GetExchangeRate(ctx context.Context) (nbu.ExchangeRate, error)
}

type PostSerializer interface {
	PostToString(table model.PriceTable, date time.Time, contact string) (string, error)
}

type Publisher interface {
	SendPost(ctx context.Context, chatID string, text string) error
}

// PostSettings are the post parameters that stay fixed for the process lifetime.
type PostSettings struct {
	ChatID        string
	ManagerHandle string
	Discount      float64
	Grades        []int
}

type PublishPricesUsecase struct {
	logger     *slog.Logger
	settings   PostSettings
	spotSource SpotSource
	rateSource RateSource
	serializer PostSerializer
	publisher  Publisher
	now        func() time.Time
}

func NewPublishPricesUsecase(logger *slog.Logger, settings PostSettings, spotSource SpotSource, rateSource RateSource, serializer PostSerializer, publisher Publisher) *PublishPricesUsecase {
	return &PublishPricesUsecase{
		logger:     logger.With("component", "publish_prices"),
		settings:   settings,
		spotSource: spotSource,
		rateSource: rateSource,
		serializer: serializer,
		publisher:  publisher,
		now:        time.Now,
	}
}

// WithClock replaces the source of the post date.
func (that *PublishPricesUsecase) WithClock(now func() time.Time) *PublishPricesUsecase {
	that.now = now
	return that
}

// Run fetches both prices, builds the post and publishes it. The first failing stage aborts the run,
// so nothing is published unless every previous stage succeeded.
func (that *PublishPricesUsecase) Run(ctx context.Context) (string, error) {
	log := that.logger.With("method", "Run", "run_id", uuid.NewString())

	if that.settings.Discount < 0 || that.settings.Discount > 1 {
		log.Warn("discount is outside [0, 1], prices will be negative or inflated", "discount", that.settings.Discount)
	}

	spotPrice, err := that.spotSource.GetSpotPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("get spot price: %w", err)
	}
	log.Info("got spot price", "source", that.spotSource.Name(), "usd_per_gram", spotPrice)

	rate, err := that.rateSource.GetExchangeRate(ctx)
	if err != nil {
		return "", fmt.Errorf("get exchange rate: %w", err)
	}
	log.Info("got exchange rate", "currency", rate.CurrencyCode, "rate", rate.Rate, "exchange_date", rate.ExchangeDate)

	table := pricing.Compute(spotPrice, rate.Rate, that.settings.Discount, that.settings.Grades)
	log.Info("computed prices", "buy_price_999", pricing.BuyPricePerGram999(spotPrice, rate.Rate, that.settings.Discount).StringFixed(2))

	text, err := that.serializer.PostToString(table, that.now(), that.settings.ManagerHandle)
	if err != nil {
		return "", fmt.Errorf("serialize post: %w", err)
	}

	if err = that.publisher.SendPost(ctx, that.settings.ChatID, text); err != nil {
		return "", fmt.Errorf("publish post: %w", err)
	}

	log.Info("post published", "chat_id", that.settings.ChatID)
	return text, nil
}
