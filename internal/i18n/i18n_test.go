package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherchat/backend/internal/domain"
)

func TestEveryLanguageHasEveryString(t *testing.T) {
	for _, lang := range domain.SupportedLanguages {
		tr := Get(lang)
		require.NotNil(t, tr, "language %s", lang)

		v := reflect.ValueOf(*tr)
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).String(),
				"language %s is missing %s", lang, v.Type().Field(i).Name)
		}
	}
}

func TestGetFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, Get(domain.LanguageEN), Get(domain.Language("xx")))
}

func TestLanguagesDiffer(t *testing.T) {
	assert.NotEqual(t, Get(domain.LanguageEN).WelcomeMessage, Get(domain.LanguageLV).WelcomeMessage)
	assert.NotEqual(t, Get(domain.LanguageRU).WelcomeMessage, Get(domain.LanguageUK).WelcomeMessage)
}
