package config

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"goldpost/internal/model"
)

const (
	DefaultLanguageCode = "uk"

	SpotSourceAPI  = "api"
	SpotSourcePage = "page"
)

type Config struct {
	Telegram Telegram
	Post     Post
	Spot     Spot
	Rate     Rate
	HTTP     HTTP
	Schedule Schedule
	Logger   Logger
}

type Telegram struct {
	Token     string `env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	ChatID    string `env:"TELEGRAM_CHAT_ID" env-required:"true"`
	ServerURL string `env:"TELEGRAM_SERVER_URL" env-default:"https://api.telegram.org"`
}

type Post struct {
	ManagerHandle string  `env:"MANAGER_HANDLE" env-default:"@gridr"`
	Discount      float64 `env:"DISCOUNT" env-default:"0.20"`
	Grades        []int   `env:"PURITY_GRADES" env-default:"999,750,585,550,375"`
	Language      string  `env:"POST_LANGUAGE" env-default:"uk"`
	TimeZone      string  `env:"POST_TIMEZONE" env-default:"Europe/Kyiv"`
}

// Location returns the zone the post date is rendered in.
func (p *Post) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: load time zone %q: %w", model.ErrConfig, p.TimeZone, err)
	}

	return loc, nil
}

type Spot struct {
	Source       string  `env:"SPOT_SOURCE" env-default:"api"`
	APIURL       string  `env:"SPOT_API_URL" env-default:"https://data-asg.goldprice.org/dbXRates/USD"`
	PageURL      string  `env:"SPOT_PAGE_URL" env-default:"https://goldprice.org/"`
	PageSelector string  `env:"SPOT_PAGE_SELECTOR" env-default:".gpoticker-price-gram"`
	MinPerGram   float64 `env:"SPOT_MIN_PER_GRAM" env-default:"10"`
	MaxPerGram   float64 `env:"SPOT_MAX_PER_GRAM" env-default:"500"`
}

type Rate struct {
	URL          string `env:"NBU_URL" env-default:"https://bank.gov.ua/NBUStatService/v1/statdirectory/exchange"`
	CurrencyCode string `env:"CURRENCY_CODE" env-default:"USD"`
}

type HTTP struct {
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"30s"`
	UserAgent      string        `env:"HTTP_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
	AcceptLanguage string        `env:"HTTP_ACCEPT_LANGUAGE" env-default:"uk-UA,uk;q=0.9,en-US;q=0.8,en;q=0.7"`
}

// Headers returns the header set sent to the pricing sources.
// Some of them reject requests with the default Go client identifiers.
func (h *HTTP) Headers() http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", h.UserAgent)
	headers.Set("Accept-Language", h.AcceptLanguage)
	return headers
}

type Schedule struct {
	Cron string `env:"SCHEDULE_CRON" env-default:"0 10 * * *"`
}

type Logger struct {
	Level           string     `env:"LOG_LEVEL" env-default:"info"`
	ParsedSlogLevel slog.Level
}

// Load reads config from the environment.
func Load() (*Config, error) {
	cnf := &Config{}

	if err := cleanenv.ReadEnv(cnf); err != nil {
		return nil, fmt.Errorf("%w: read env: %w", model.ErrConfig, err)
	}

	// cleanenv accepts a variable that is set but empty.
	if strings.TrimSpace(cnf.Telegram.Token) == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_BOT_TOKEN is required", model.ErrConfig)
	}

	if strings.TrimSpace(cnf.Telegram.ChatID) == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_CHAT_ID is required", model.ErrConfig)
	}

	if len(cnf.Post.Grades) == 0 {
		return nil, fmt.Errorf("%w: PURITY_GRADES is empty", model.ErrConfig)
	}

	for _, grade := range cnf.Post.Grades {
		if grade <= 0 || grade > 999 {
			return nil, fmt.Errorf("%w: purity grade %d is out of range 1..999", model.ErrConfig, grade)
		}
	}

	// ParseFloat accepts NaN and Inf; the discount range itself is not checked.
	finite := map[string]float64{
		"DISCOUNT":          cnf.Post.Discount,
		"SPOT_MIN_PER_GRAM": cnf.Spot.MinPerGram,
		"SPOT_MAX_PER_GRAM": cnf.Spot.MaxPerGram,
	}
	for key, value := range finite {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("%w: %s must be a finite number", model.ErrConfig, key)
		}
	}

	if cnf.Spot.MinPerGram >= cnf.Spot.MaxPerGram {
		return nil, fmt.Errorf("%w: SPOT_MIN_PER_GRAM must be less than SPOT_MAX_PER_GRAM", model.ErrConfig)
	}

	switch cnf.Spot.Source {
	case SpotSourceAPI, SpotSourcePage:
	default:
		return nil, fmt.Errorf("%w: unknown SPOT_SOURCE %q", model.ErrConfig, cnf.Spot.Source)
	}

	switch cnf.Logger.Level {
	case "debug":
		cnf.Logger.ParsedSlogLevel = slog.LevelDebug
	case "info":
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	case "warn":
		cnf.Logger.ParsedSlogLevel = slog.LevelWarn
	case "error":
		cnf.Logger.ParsedSlogLevel = slog.LevelError
	default:
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	}

	return cnf, nil
}
