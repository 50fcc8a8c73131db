package config

import "strings"

const (
	// Sentence-ending punctuation for Latin-script languages.
	latinSplitChars = ".!?"
	// Full-width punctuation used by CJK voices.
	cjkSplitChars = "？。：，、”"
)

// CJK language codes (first 3 chars of the code).
var cjkCodes = map[string]bool{
	"zho": true,
	"jpn": true,
	"kor": true,
	"chi": true,
	"zh":  true,
	"ja":  true,
	"ko":  true,
}

// IsCJK returns true if the language code represents Chinese, Japanese, or Korean.
func IsCJK(langCode string) bool {
	langCode, _, _ = strings.Cut(langCode, "-")
	if len(langCode) > 3 {
		langCode = langCode[:3]
	}
	return cjkCodes[langCode]
}

// SplitCharsForLang returns the default split characters for the given
// language code.
func SplitCharsForLang(langCode string) string {
	if IsCJK(langCode) {
		return cjkSplitChars
	}
	return latinSplitChars
}

// LangFromVoice extracts the language code from a voice name like
// "zh-CN-YunjianNeural".
func LangFromVoice(voice string) string {
	lang, _, ok := strings.Cut(voice, "-")
	if !ok {
		return ""
	}
	return lang
}
