package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{
			name: "plain english",
			text: "What is the current situation in Jakarta?",
			want: LanguageEnglish,
		},
		{
			name: "two markers classify as indonesian",
			text: "apa itu stunting",
			want: LanguageIndonesian,
		},
		{
			name: "single marker stays english",
			text: "tell me about stunting in Indonesia",
			want: LanguageEnglish,
		},
		{
			name: "indonesian question",
			text: "Bagaimana cara mencegah stunting pada anak?",
			want: LanguageIndonesian,
		},
		{
			name: "mixed case input",
			text: "APA penyebab STUNTING?",
			want: LanguageIndonesian,
		},
		{
			name: "empty input defaults to english",
			text: "",
			want: LanguageEnglish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}
