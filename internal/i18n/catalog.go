package i18n

// DefaultLang is used when a user hasn't picked a language yet
// or sends an unsupported code.
const DefaultLang = "ru"

// Catalog keys
const (
	KeyLangTitle  = "lang_title"
	KeyMenu       = "menu"
	KeyApply      = "apply"
	KeyChangeLang = "change_lang"
	KeyAskName    = "ask_name"
	KeyAskComment = "ask_comment"
	KeyThanks     = "thanks"
	KeyLead       = "lead"
)

var catalog = map[string]map[string]string{
	"ru": {
		KeyLangTitle:  "🌐 Выберите язык",
		KeyMenu:       "Меню:",
		KeyApply:      "📝 Оставить заявку",
		KeyChangeLang: "🌐 Язык",
		KeyAskName:    "Как вас зовут?",
		KeyAskComment: "Оставьте ваш запрос или проблему!",
		KeyThanks:     "✅ Спасибо! Заявка отправлена.",
		KeyLead:       "📩 Новая заявка",
	},
	"uz": {
		KeyLangTitle:  "🌐 Tilni tanlang",
		KeyMenu:       "Menyu:",
		KeyApply:      "📝 Ariza qoldirish",
		KeyChangeLang: "🌐 Til",
		KeyAskName:    "Ismingiz?",
		KeyAskComment: "So‘rov yoki muammoingizni qoldiring!",
		KeyThanks:     "✅ Rahmat! Ariza yuborildi.",
		KeyLead:       "📩 Yangi ariza",
	},
	"en": {
		KeyLangTitle:  "🌐 Choose language",
		KeyMenu:       "Menu:",
		KeyApply:      "📝 Submit request",
		KeyChangeLang: "🌐 Language",
		KeyAskName:    "Your name?",
		KeyAskComment: "Write your request or problem!",
		KeyThanks:     "✅ Thank you! Request sent.",
		KeyLead:       "📩 New request",
	},
}

// displayNames are the labels shown on the language selector buttons.
var displayNames = map[string]string{
	"ru": "🇷🇺 Русский",
	"uz": "🇺🇿 O‘zbek",
	"en": "🇬🇧 English",
}

// languages is the fixed selector order.
var languages = []string{"ru", "uz", "en"}

// T returns the localized string for key in lang.
// An unsupported lang falls back to DefaultLang; an unknown key is
// returned verbatim so a missing entry is visible instead of fatal.
func T(lang, key string) string {
	table, ok := catalog[lang]
	if !ok {
		table = catalog[DefaultLang]
	}
	if text, ok := table[key]; ok {
		return text
	}
	return key
}

// IsSupported reports whether lang is one of the catalog languages.
func IsSupported(lang string) bool {
	_, ok := catalog[lang]
	return ok
}

// Normalize maps unsupported codes to DefaultLang.
func Normalize(lang string) string {
	if IsSupported(lang) {
		return lang
	}
	return DefaultLang
}

// Languages returns the supported codes in selector order.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// DisplayName returns the human label for a language code.
func DisplayName(lang string) string {
	if name, ok := displayNames[lang]; ok {
		return name
	}
	return lang
}
