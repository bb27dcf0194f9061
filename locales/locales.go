package locales

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.*.json
var files embed.FS

func GetBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.Ukrainian)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	_, err := bundle.LoadMessageFileFS(files, "active.uk.json")
	if err != nil {
		return nil, fmt.Errorf("load active.uk.json: %w", err)
	}

	_, err = bundle.LoadMessageFileFS(files, "active.en.json")
	if err != nil {
		return nil, fmt.Errorf("load active.en.json: %w", err)
	}

	return bundle, nil
}
