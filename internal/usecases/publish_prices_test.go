package usecases_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goldpost/internal/interaction/nbu"
	"goldpost/internal/interaction/telegram"
	"goldpost/internal/model"
	"goldpost/internal/usecases"
	"goldpost/testing/suite"
)

type MockSpotSource struct {
	mock.Mock
}

func (m *MockSpotSource) Name() string {
	return "mock_spot"
}

func (m *MockSpotSource) GetSpotPrice(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) GetExchangeRate(ctx context.Context) (nbu.ExchangeRate, error) {
	args := m.Called(ctx)
	return args.Get(0).(nbu.ExchangeRate), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) SendPost(ctx context.Context, chatID string, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

func Test_PublishPricesUsecase_Run(t *testing.T) {
	ctx, st := suite.New(t, suite.WithBundle())

	settings := usecases.PostSettings{ChatID: "@gold_channel", ManagerHandle: "@gridr", Discount: 0.20, Grades: model.DefaultGrades}
	usdRate := nbu.ExchangeRate{Code: 840, Rate: 41.5, CurrencyCode: "USD", ExchangeDate: "19.10.2026"}
	clock := func() time.Time { return suite.GetDateTime(t, "2026-10-19 10:00", st.Loc) }

	newUsecase := func(spot *MockSpotSource, rate *MockRateSource, publisher *MockPublisher) *usecases.PublishPricesUsecase {
		serializer := telegram.NewSerializer(st.GetBundle(), "uk", st.Loc)
		return usecases.NewPublishPricesUsecase(st.Logger, settings, spot, rate, serializer, publisher).WithClock(clock)
	}

	t.Run("should publish the computed prices", func(t *testing.T) {
		spot, rate, publisher := new(MockSpotSource), new(MockRateSource), new(MockPublisher)

		// Given: 65 USD per gram and 41.5 UAH per USD
		spot.On("GetSpotPrice", mock.Anything).Return(65.0, nil).Once()
		rate.On("GetExchangeRate", mock.Anything).Return(usdRate, nil).Once()
		publisher.On("SendPost", mock.Anything, "@gold_channel", mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "🔸999 — 2158 грн/г") &&
				strings.Contains(text, "🔸750 — 1620 грн/г") &&
				strings.Contains(text, "🔸585 — 1264 грн/г") &&
				strings.Contains(text, "🔸550 — 1188 грн/г") &&
				strings.Contains(text, "🔸375 — 810 грн/г") &&
				strings.Contains(text, "19.10.2026") &&
				strings.Contains(text, "@gridr")
		})).Return(nil).Once()

		// When: We run the pipeline
		text, err := newUsecase(spot, rate, publisher).Run(ctx)

		// Then: The post is published once
		require.NoError(t, err)
		require.NotEmpty(t, text)
		spot.AssertExpectations(t)
		rate.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("should not fetch the rate nor publish when the spot price fails", func(t *testing.T) {
		spot, rate, publisher := new(MockSpotSource), new(MockRateSource), new(MockPublisher)

		spot.On("GetSpotPrice", mock.Anything).Return(0.0, model.NewFetchError("mock_spot", fmt.Errorf("%w: price per gram 2.5 is outside [10, 500]", model.ErrValidation))).Once()

		_, err := newUsecase(spot, rate, publisher).Run(ctx)

		require.ErrorIs(t, err, model.ErrValidation)
		rate.AssertNotCalled(t, "GetExchangeRate", mock.Anything)
		publisher.AssertNotCalled(t, "SendPost", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not publish when the rate fetch fails", func(t *testing.T) {
		spot, rate, publisher := new(MockSpotSource), new(MockRateSource), new(MockPublisher)

		spot.On("GetSpotPrice", mock.Anything).Return(65.0, nil).Once()
		rate.On("GetExchangeRate", mock.Anything).Return(nbu.ExchangeRate{}, model.NewFetchError("nbu", fmt.Errorf("%w: bad status code: 503", model.ErrNetwork))).Once()

		_, err := newUsecase(spot, rate, publisher).Run(ctx)

		require.ErrorIs(t, err, model.ErrNetwork)

		var fetchErr *model.FetchError
		require.ErrorAs(t, err, &fetchErr)
		require.Equal(t, "nbu", fetchErr.Source)
		publisher.AssertNotCalled(t, "SendPost", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should surface a publish failure", func(t *testing.T) {
		spot, rate, publisher := new(MockSpotSource), new(MockRateSource), new(MockPublisher)

		spot.On("GetSpotPrice", mock.Anything).Return(65.0, nil).Once()
		rate.On("GetExchangeRate", mock.Anything).Return(usdRate, nil).Once()
		publisher.On("SendPost", mock.Anything, mock.Anything, mock.Anything).Return(model.NewFetchError("telegram", model.ErrNetwork)).Once()

		_, err := newUsecase(spot, rate, publisher).Run(ctx)

		require.ErrorIs(t, err, model.ErrNetwork)
		publisher.AssertNumberOfCalls(t, "SendPost", 1)
	})

	t.Run("should publish uncorrected prices for a discount above one", func(t *testing.T) {
		spot, rate, publisher := new(MockSpotSource), new(MockRateSource), new(MockPublisher)

		spot.On("GetSpotPrice", mock.Anything).Return(65.0, nil).Once()
		rate.On("GetExchangeRate", mock.Anything).Return(usdRate, nil).Once()
		publisher.On("SendPost", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		overDiscounted := settings
		overDiscounted.Discount = 1.5
		serializer := telegram.NewSerializer(st.GetBundle(), "uk", st.Loc)

		text, err := usecases.NewPublishPricesUsecase(st.Logger, overDiscounted, spot, rate, serializer, publisher).WithClock(clock).Run(ctx)

		require.NoError(t, err)
		require.Contains(t, text, "🔸999 — -1349 грн/г")
	})
}
