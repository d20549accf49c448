package localization

import (
	"testing"
	"toaster/sources/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *LocalizationManager {
	t.Helper()

	manager, err := NewLocalizationManager(&LocalizationConfig{
		DefaultLanguage:    "ru",
		SupportedLanguages: []string{"ru", "en"},
	}, tracing.NewConsoleLogger())
	require.NoError(t, err)

	return manager
}

func TestLanguage(t *testing.T) {
	manager := newTestManager(t)

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{name: "Empty uses default", code: "", expected: "ru"},
		{name: "Exact english", code: "en", expected: "en"},
		{name: "Regional english", code: "en-US", expected: "en"},
		{name: "Russian", code: "ru", expected: "ru"},
		{name: "Garbage uses default", code: "!!", expected: "ru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, manager.Language(tt.code))
		})
	}
}

func TestLocalizeTemplates(t *testing.T) {
	manager := newTestManager(t)

	assert.Equal(t, "📝 Беседа помечена как \"raid\".", manager.LocalizeTd("ru", "AckMarkSet", map[string]interface{}{"Mark": "raid"}))
	assert.Equal(t, "📝 Conversation marked as \"raid\".", manager.LocalizeTd("en", "AckMarkSet", map[string]interface{}{"Mark": "raid"}))
}

func TestLocalizeFallsBackToMessageID(t *testing.T) {
	manager := newTestManager(t)

	assert.Equal(t, "NoSuchMessage", manager.Localize("ru", "NoSuchMessage"))
}

func TestLocalesAreComplete(t *testing.T) {
	manager := newTestManager(t)

	ids := []string{
		"AckAccessDenied", "AckCommandCancelled", "AckFilterDisabled", "BannerSystems",
		"BannerFilters", "ButtonCloseMenu", "FilterWall", "SettingSlowMode", "MsgHelp",
	}

	for _, id := range ids {
		for _, lang := range []string{"ru", "en"} {
			assert.NotEqual(t, id, manager.Localize(lang, id), "%s is missing in %s", id, lang)
		}
	}
}

func TestBannerKeepsBackslash(t *testing.T) {
	manager := newTestManager(t)

	assert.Equal(t, `⚙️ Включение\Выключение фильтров сообщений:`, manager.Localize("ru", "BannerFilters"))
}
