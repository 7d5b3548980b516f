package utils

import (
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle = newBundle()

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	return b
}

// InitI18NBundle loads the message files of every supported language from dir
func InitI18NBundle(dir string) error {
	b := newBundle()
	for _, f := range []string{"en.yaml", "zh_tw.yaml"} {
		if _, err := b.LoadMessageFile(path.Join(dir, f)); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

// NormalizeLang turns a header value like "zh-TW" into a bundle tag
func NormalizeLang(lang string) string {
	return strings.ReplaceAll(strings.ToLower(lang), "_", "-")
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, NormalizeLang(lang))
}

// LocalizeOr returns the localized message of id, or fallback when it is not translated
func LocalizeOr(loc *i18n.Localizer, id, fallback string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: id,
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
