package config

import "testing"

func TestIsCJK(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"zh", true},
		{"zho", true},
		{"ja", true},
		{"kor", true},
		{"en", false},
		{"fra", false},
		{"zh-CN", true}, // region suffix ignored
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := IsCJK(tt.lang); got != tt.want {
				t.Errorf("IsCJK(%s) = %v, want %v", tt.lang, got, tt.want)
			}
		})
	}
}

func TestSplitCharsForLang(t *testing.T) {
	if got := SplitCharsForLang("en"); got != ".!?" {
		t.Errorf("SplitCharsForLang(en) = %q, want %q", got, ".!?")
	}
	if got := SplitCharsForLang("zh"); got != "？。：，、”" {
		t.Errorf("SplitCharsForLang(zh) = %q, want CJK set", got)
	}
}

func TestLangFromVoice(t *testing.T) {
	tests := []struct {
		voice string
		want  string
	}{
		{"zh-CN-YunjianNeural", "zh"},
		{"en-US-JennyNeural", "en"},
		{"novoice", ""},
	}

	for _, tt := range tests {
		if got := LangFromVoice(tt.voice); got != tt.want {
			t.Errorf("LangFromVoice(%s) = %q, want %q", tt.voice, got, tt.want)
		}
	}
}
