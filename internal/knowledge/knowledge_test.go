package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	content, ok := Lookup("what is stunting exactly?", LanguageEnglish)
	require.True(t, ok)
	assert.Contains(t, content, "height")

	content, ok = Lookup("bagaimana cara mencegah stunting?", LanguageIndonesian)
	require.True(t, ok)
	assert.Contains(t, content, "1000 hari")
}

func TestLookupNoMatch(t *testing.T) {
	_, ok := Lookup("completely unrelated question about the weather", LanguageEnglish)
	assert.False(t, ok)
}

func TestLookupRespectsLanguage(t *testing.T) {
	// "penyebab" is an Indonesian keyword; it must not match English entries.
	_, ok := Lookup("penyebab", LanguageEnglish)
	assert.False(t, ok)

	content, ok := Lookup("apa penyebab utamanya?", LanguageIndonesian)
	require.True(t, ok)
	assert.Contains(t, content, "faktor")
}

func TestLookupMonitoringAndNutritionTopics(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		lang    Language
		snippet string
	}{
		{"growth monitoring en", "growth monitoring and measurement percentile", LanguageEnglish, "MUAC"},
		{"nutrition guidelines en", "nutrition guidelines and vitamin protein diet", LanguageEnglish, "breastfeeding"},
		{"risk factors en", "which children are most at risk?", LanguageEnglish, "birth weight"},
		{"warning signs en", "early warning signs detection", LanguageEnglish, "appetite"},
		{"growth monitoring id", "pemantauan pertumbuhan anak", LanguageIndonesian, "MUAC"},
		{"nutrition guidelines id", "panduan gizi untuk bayi", LanguageIndonesian, "ASI"},
		{"risk factors id", "anak yang rentan dan berisiko", LanguageIndonesian, "berat lahir rendah"},
		{"warning signs id", "tanda peringatan dini", LanguageIndonesian, "nafsu makan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, ok := Lookup(tt.text, tt.lang)
			require.True(t, ok)
			assert.Contains(t, content, tt.snippet)
		})
	}
}

func TestEveryTopicHasBothLanguages(t *testing.T) {
	languages := map[Topic]map[Language]bool{}
	for _, entry := range entries {
		if languages[entry.Topic] == nil {
			languages[entry.Topic] = map[Language]bool{}
		}
		languages[entry.Topic][entry.Language] = true
	}
	assert.Len(t, languages, 8)
	for topic, langs := range languages {
		assert.True(t, langs[LanguageEnglish], "topic %s missing English entry", topic)
		assert.True(t, langs[LanguageIndonesian], "topic %s missing Indonesian entry", topic)
	}
}

func TestGuidanceListsTopics(t *testing.T) {
	en := Guidance(LanguageEnglish)
	for _, topic := range []string{"STUNTING", "PREVENTION", "SOLUTIONS", "IMPACT"} {
		assert.Contains(t, en, topic)
	}
	assert.Contains(t, en, "OPENAI_API_KEY")

	id := Guidance(LanguageIndonesian)
	for _, topic := range []string{"STUNTING", "PENCEGAHAN", "SOLUSI", "DAMPAK"} {
		assert.Contains(t, id, topic)
	}
}

func TestEntriesHaveLowerCaseKeywords(t *testing.T) {
	// Lookup lower-cases the input, so keywords must already be lower case.
	for _, entry := range entries {
		for _, keyword := range entry.Keywords {
			assert.Equal(t, strings.ToLower(keyword), keyword,
				"keyword %q of topic %s", keyword, entry.Topic)
		}
	}
}
