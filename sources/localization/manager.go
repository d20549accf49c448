package localization

import (
	"embed"
	"fmt"
	"sync"
	"toaster/sources/tracing"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

type LocalizationManager struct {
	bundle     *i18n.Bundle
	matcher    language.Matcher
	config     *LocalizationConfig
	log        *tracing.Logger
	localizers sync.Map
}

func NewLocalizationManager(config *LocalizationConfig, log *tracing.Logger) (*LocalizationManager, error) {
	defaultTag, err := language.Parse(config.DefaultLanguage)
	if err != nil {
		log.E("Invalid default language", "language", config.DefaultLanguage, tracing.InnerError, err)
		return nil, fmt.Errorf("invalid default language %q: %w", config.DefaultLanguage, err)
	}

	bundle := i18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	tags := []language.Tag{defaultTag}
	for _, lang := range config.SupportedLanguages {
		filename := fmt.Sprintf("locales/active.%s.toml", lang)

		data, err := localesFS.ReadFile(filename)
		if err != nil {
			log.E("Failed to read locale file", "filename", filename, tracing.InnerError, err)
			return nil, fmt.Errorf("failed to read locale file %s: %w", filename, err)
		}

		file, err := bundle.ParseMessageFileBytes(data, filename)
		if err != nil {
			log.E("Failed to parse locale file", "filename", filename, tracing.InnerError, err)
			return nil, fmt.Errorf("failed to parse locale file %s: %w", filename, err)
		}

		tags = append(tags, file.Tag)
		log.D("Loaded locale file", "filename", filename)
	}

	log.I("LocalizationManager initialized successfully", "languages", config.SupportedLanguages)
	return &LocalizationManager{
		bundle:  bundle,
		matcher: language.NewMatcher(tags),
		config:  config,
		log:     log,
	}, nil
}

// Language maps a client language code ("en-US", "ru", "") to a supported language.
func (x *LocalizationManager) Language(code string) string {
	if code == "" {
		return x.config.DefaultLanguage
	}

	tag, err := language.Parse(code)
	if err != nil {
		return x.config.DefaultLanguage
	}

	_, index, confidence := x.matcher.Match(tag)
	if confidence == language.No {
		return x.config.DefaultLanguage
	}

	if index == 0 {
		return x.config.DefaultLanguage
	}
	return x.config.SupportedLanguages[index-1]
}

func (x *LocalizationManager) localizer(lang string) *i18n.Localizer {
	lang = x.Language(lang)
	if cached, ok := x.localizers.Load(lang); ok {
		return cached.(*i18n.Localizer)
	}

	localizer := i18n.NewLocalizer(x.bundle, lang, x.config.DefaultLanguage)
	x.localizers.Store(lang, localizer)
	return localizer
}

func (x *LocalizationManager) Localize(lang string, messageID string) string {
	return x.LocalizeTd(lang, messageID, nil)
}

func (x *LocalizationManager) LocalizeTd(lang string, messageID string, templateData map[string]interface{}) string {
	msg, err := x.localizer(lang).Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: templateData})
	if err != nil {
		x.log.E("Failed to localize message", "message_id", messageID, tracing.InnerError, err)
		return messageID
	}

	return msg
}
