package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"goldpost/locales"
)

type Option func(s *Suite)

type Suite struct {
	T      *testing.T
	Logger *slog.Logger
	Loc    *time.Location

	Bundle *i18n.Bundle
}

func New(t *testing.T, opts ...Option) (context.Context, *Suite) {
	ctx := context.Background()

	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Fatalf("could not load time zone: %v", err)
	}

	s := &Suite{T: t, Loc: loc}
	s.Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

	for _, opt := range opts {
		opt(s)
	}
	return ctx, s
}

func (s *Suite) GetBundle() *i18n.Bundle {
	s.T.Helper()

	if s.Bundle == nil {
		s.T.Fatal("Message bundle is not initialized! Use suite.New(t, suite.WithBundle()) option.")
		return nil
	}

	return s.Bundle
}

func WithBundle() Option {
	return func(s *Suite) {
		bundle, err := locales.GetBundle()
		if err != nil {
			s.T.Fatal(err)
		}

		s.Bundle = bundle
	}
}
