package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "lang_ru",
			expected: "lang_ru",
		},
		{
			name:     "string with whitespace",
			input:    "  lang_ru  ",
			expected: "lang_ru",
		},
		{
			name:     "string with telebot unique marker",
			input:    "\flang_uz",
			expected: "lang_uz",
		},
		{
			name:     "string with newline",
			input:    "lang\n_en",
			expected: "lang_en",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "lang\x00_ru\x01",
			expected: "lang_ru",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseLanguageCode(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedCode string
		expectedOK   bool
	}{
		{
			name:         "russian",
			input:        "lang_ru",
			expectedCode: "ru",
			expectedOK:   true,
		},
		{
			name:         "uzbek",
			input:        "lang_uz",
			expectedCode: "uz",
			expectedOK:   true,
		},
		{
			name:         "english",
			input:        "lang_en",
			expectedCode: "en",
			expectedOK:   true,
		},
		{
			name:       "unknown prefix",
			input:      "page_2",
			expectedOK: false,
		},
		{
			name:       "prefix without code",
			input:      "lang_",
			expectedOK: false,
		},
		{
			name:       "empty string",
			input:      "",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := parseLanguageCode(tt.input)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedCode, code)
			}
		})
	}
}

func TestMainMenuMarkup(t *testing.T) {
	menu := mainMenuMarkup("en")

	assert.True(t, menu.ResizeKeyboard)
	require.Len(t, menu.ReplyKeyboard, 2)
	require.Len(t, menu.ReplyKeyboard[0], 1)
	require.Len(t, menu.ReplyKeyboard[1], 1)
	assert.Equal(t, "📝 Submit request", menu.ReplyKeyboard[0][0].Text)
	assert.Equal(t, "🌐 Language", menu.ReplyKeyboard[1][0].Text)
}

func TestMainMenuMarkup_Localized(t *testing.T) {
	menu := mainMenuMarkup("uz")

	assert.Equal(t, "📝 Ariza qoldirish", menu.ReplyKeyboard[0][0].Text)
	assert.Equal(t, "🌐 Til", menu.ReplyKeyboard[1][0].Text)
}

func TestLanguageBarMarkup(t *testing.T) {
	bar := languageBarMarkup("uz")

	require.Len(t, bar.InlineKeyboard, 1)
	row := bar.InlineKeyboard[0]
	require.Len(t, row, 3)

	assert.Equal(t, "lang_ru", row[0].Unique)
	assert.Equal(t, "lang_uz", row[1].Unique)
	assert.Equal(t, "lang_en", row[2].Unique)

	// Only the selected language carries the marker.
	assert.Equal(t, "🇷🇺 Русский", row[0].Text)
	assert.Equal(t, "✅ 🇺🇿 O‘zbek", row[1].Text)
	assert.Equal(t, "🇬🇧 English", row[2].Text)
}

func TestLanguageBarMarkup_NoSelection(t *testing.T) {
	bar := languageBarMarkup("")

	for _, btn := range bar.InlineKeyboard[0] {
		assert.NotContains(t, btn.Text, "✅")
	}
}

func TestRemoveKeyboardMarkup(t *testing.T) {
	assert.True(t, removeKeyboardMarkup().RemoveKeyboard)
}
