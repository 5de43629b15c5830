// Package i18n localizes the labels shown on command keys, such as the
// layout-switch captions and the phone-pad Pause/Wait keys.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed localization/*.toml
var messageFiles embed.FS

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

// Init loads the embedded message files and selects English as the
// fallback language.
func Init() error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFiles.ReadDir("localization")
	if err != nil {
		return fmt.Errorf("failed to read embedded message files: %w", err)
	}

	for _, entry := range entries {
		content, err := messageFiles.ReadFile("localization/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read message file %s: %w", entry.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(content, entry.Name()); err != nil {
			return fmt.Errorf("failed to parse message file %s: %w", entry.Name(), err)
		}
	}

	localizer := i18n.NewLocalizer(bundle, language.English.String())

	i = &I18N{localizer: localizer, bundle: bundle}

	return nil
}

func SetLanguage(lang language.Tag) {
	if i == nil {
		return
	}

	localizer := i18n.NewLocalizer(i.bundle, lang.String(), language.English.String())

	i = &I18N{localizer: localizer, bundle: i.bundle}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

// Localize retrieves a localized string using the go-i18n struct pattern.
// The message provides the ID and fallback text; if no translation exists
// for the current locale (or Init was never called), the message's Other
// field is returned.
func Localize(message *Message) string {
	if message == nil {
		return ""
	}
	if i == nil {
		return message.Other
	}

	msg, err := i.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
	})
	if err != nil {
		return message.Other
	}
	return msg
}
