package i18n

import (
	"embed"
	"log"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"rosterbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// localeFiles lists the embedded catalogues. English comes first and backs
// every other language.
var localeFiles = []string{"active.en.toml", "active.ru.toml"}

var _ output.T = (*Translator)(nil)

// Translator renders roster messages in the caller's language. Platform
// locales such as "ru-RU" or "en-GB" are matched to the closest catalogue;
// anything unsupported gets the configured default.
type Translator struct {
	bundle    *i18n.Bundle
	supported []language.Tag // fallback first
	matcher   language.Matcher

	mu         sync.RWMutex
	localizers map[language.Tag]*i18n.Localizer
}

// NewTranslator loads the embedded catalogues. defaultLocale picks the
// fallback language and is itself matched, so "ru-RU" selects Russian and an
// unknown or unparseable value selects English.
func NewTranslator(defaultLocale string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var loaded []language.Tag
	for _, file := range localeFiles {
		mf, err := bundle.LoadMessageFileFS(localeFS, file)
		if err != nil {
			log.Printf("⚠️ i18n: failed to load %s: %v", file, err)
			continue
		}
		loaded = append(loaded, mf.Tag)
	}
	if len(loaded) == 0 {
		loaded = []language.Tag{language.English}
	}

	t := &Translator{
		bundle:     bundle,
		supported:  loaded,
		matcher:    language.NewMatcher(loaded),
		localizers: make(map[language.Tag]*i18n.Localizer),
	}
	fallback := t.Resolve(defaultLocale)
	t.supported = withFirst(loaded, fallback)
	t.matcher = language.NewMatcher(t.supported)
	return t
}

func withFirst(tags []language.Tag, first language.Tag) []language.Tag {
	out := []language.Tag{first}
	for _, tag := range tags {
		if tag != first {
			out = append(out, tag)
		}
	}
	return out
}

// Resolve maps a platform locale to a supported language.
func (t *Translator) Resolve(locale string) language.Tag {
	if locale == "" {
		return t.supported[0]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return t.supported[0]
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.supported[0]
	}
	return t.supported[idx]
}

func (t *Translator) localizer(tag language.Tag) *i18n.Localizer {
	t.mu.RLock()
	l, ok := t.localizers[tag]
	t.mu.RUnlock()
	if ok {
		return l
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if l, ok := t.localizers[tag]; ok {
		return l
	}
	l = i18n.NewLocalizer(t.bundle, tag.String(), t.supported[0].String())
	t.localizers[tag] = l
	return l
}

// T renders key for locale. Missing messages fall back to the default
// language, then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	tag := t.Resolve(locale)
	msg, err := t.localizer(tag).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: no %q for %s: %v", key, tag, err)
		return key
	}
	return msg
}

// Languages returns the languages with a catalogue, default first.
func (t *Translator) Languages() []language.Tag {
	return append([]language.Tag(nil), t.supported...)
}
