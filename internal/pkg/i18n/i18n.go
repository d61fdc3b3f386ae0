package i18n

import (
	"embed"
	"encoding/json"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// Translator renders message keys in the caller's language, falling back to
// the bundle's default language.
type Translator struct {
	bundle *goi18n.Bundle
}

func New(defaultLanguage string) (*Translator, error) {
	tag, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, errors.Wrapf(err, "parse default language %q", defaultLanguage)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, errors.Wrap(err, "read locales")
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, path.Join("locales", e.Name())); err != nil {
			return nil, errors.Wrapf(err, "load locale %s", e.Name())
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Localize returns the message for key, or the key itself when no message is defined.
func (t *Translator) Localize(languageCode, key string, params map[string]any) string {
	localizer := goi18n.NewLocalizer(t.bundle, languageCode)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})
	if err != nil {
		return key
	}
	return msg
}

// Languages lists the languages that have a message file.
func (t *Translator) Languages() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}
