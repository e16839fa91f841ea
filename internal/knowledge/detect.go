package knowledge

import "strings"

type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
)

// indonesianMarkers is the fixed marker-word list used to classify input
// language. Substring matching on the lower-cased input, like the original
// heuristic; "stunting" counts for both languages and is kept on purpose.
var indonesianMarkers = []string{
	"apa", "bagaimana", "kenapa", "mengapa", "kapan", "dimana", "siapa",
	"stunting", "pendek", "kerdil", "nutrisi", "gizi", "makanan",
	"bayi", "anak", "ibu", "hamil", "kehamilan", "menyusui", "asi",
	"tinggi", "berat", "pertumbuhan", "perkembangan", "pencegahan",
	"pengobatan", "penyebab", "gejala", "tanda", "risiko", "faktor",
}

// DetectLanguage classifies text as Indonesian when at least two marker
// words occur in it; anything with zero or one marker is English.
func DetectLanguage(text string) Language {
	lower := strings.ToLower(text)
	count := 0
	for _, marker := range indonesianMarkers {
		if strings.Contains(lower, marker) {
			count++
			if count >= 2 {
				return LanguageIndonesian
			}
		}
	}
	return LanguageEnglish
}
