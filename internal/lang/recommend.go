package lang

import "strings"

var hintMessages = map[Language]string{
	Japanese: "ブラウザ設定に基づき、日本語がおすすめです。",
	English:  "English is recommended based on your browser settings.",
}

// Recommend maps a browser locale such as "en-US" to a site language.
// Unknown or empty locales fall back to Japanese.
func Recommend(locale string) Language {
	raw := strings.ToLower(locale)
	switch {
	case strings.HasPrefix(raw, "ja"):
		return Japanese
	case strings.HasPrefix(raw, "en"):
		return English
	default:
		return Japanese
	}
}

// HintMessage is the gateway recommendation text, written in the
// recommended language itself.
func HintMessage(recommended Language) string {
	if msg, ok := hintMessages[recommended]; ok {
		return msg
	}
	return hintMessages[Japanese]
}
