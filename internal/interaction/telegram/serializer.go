package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"goldpost/internal/config"
	"goldpost/internal/model"
)

// PostDateLayout is day.month.year.
const PostDateLayout = "02.01.2006"

var ErrWrongNumberOfArguments = fmt.Errorf("wrong number of arguments")

type Serializer struct {
	bundle       *i18n.Bundle
	languageCode string
	loc          *time.Location
}

// NewSerializer renders posts in the given language with dates in loc.
func NewSerializer(bundle *i18n.Bundle, languageCode string, loc *time.Location) *Serializer {
	if languageCode == "" {
		languageCode = config.DefaultLanguageCode
	}

	return &Serializer{bundle: bundle, languageCode: languageCode, loc: loc}
}

// PostToString returns the announcement with one line per table entry, in table order.
func (that *Serializer) PostToString(table model.PriceTable, date time.Time, contact string) (string, error) {
	title, err := that.renderLocaledMessage("postTitle", "Date", date.In(that.loc).Format(PostDateLayout))
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(table)+6)
	lines = append(lines, title+"\n")

	for _, line := range table {
		priceLine, err := that.renderLocaledMessage("postPriceLine", "Grade", strconv.Itoa(line.Grade), "Price", strconv.FormatInt(line.Rounded(), 10))
		if err != nil {
			return "", err
		}
		lines = append(lines, priceLine)
	}

	condition, err := that.renderLocaledMessage("postDisclaimerCondition")
	if err != nil {
		return "", err
	}

	manager, err := that.renderLocaledMessage("postDisclaimerManager")
	if err != nil {
		return "", err
	}

	contactLine, err := that.renderLocaledMessage("postContact", "Contact", contact)
	if err != nil {
		return "", err
	}

	hashtags, err := that.renderLocaledMessage("postHashtags")
	if err != nil {
		return "", err
	}

	lines = append(lines, condition, manager, "", contactLine+"\n", hashtags)
	return strings.Join(lines, "\n"), nil
}

// renderLocaledMessage renders a localized message.
func (that *Serializer) renderLocaledMessage(messageID string, args ...string) (string, error) {
	if len(args)%2 != 0 {
		return "", ErrWrongNumberOfArguments
	}

	templateData := make(map[string]string, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		templateData[args[i]] = args[i+1]
	}

	localizer := i18n.NewLocalizer(that.bundle, that.languageCode)
	text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: templateData})
	if err != nil {
		return "", fmt.Errorf("localize message %s: %w", messageID, err)
	}

	return text, nil
}
