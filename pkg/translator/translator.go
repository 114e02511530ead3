package translator

import (
	"fmt"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

var (
	supported = []string{LanguageEn}
	matcher   = language.NewMatcher([]language.Tag{language.English})
)

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	setSupportedLanguages(cfg.SupportedLanguages)

	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		if _, err := Translator.LoadMessageFile(filepath); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}

	zap.L().Debug("translations loaded",
		zap.Strings("languages", cfg.SupportedLanguages),
		zap.Int("bundle_languages", len(Translator.LanguageTags())),
	)
}

// Localize renders msgKey in lang, falling back to English, then to the key
// itself when no translation exists.
func Localize(msgKey, lang string, data map[string]any) string {
	if Translator == nil {
		return msgKey
	}

	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}

// MatchLanguage picks the supported language closest to an Accept-Language
// header. English wins when nothing matches.
func MatchLanguage(header string) string {
	if header == "" {
		return LanguageEn
	}
	_, index := language.MatchStrings(matcher, header)
	return supported[index]
}

// English always comes first so it is the matcher's fallback.
func setSupportedLanguages(languages []string) {
	names := []string{LanguageEn}
	tags := []language.Tag{language.English}
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		if tag == language.English {
			continue
		}
		names = append(names, lang)
		tags = append(tags, tag)
	}
	supported = names
	matcher = language.NewMatcher(tags)
}
