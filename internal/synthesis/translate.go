// internal/synthesis/translate.go
package synthesis

import (
	"regexp"
	"strings"

	"synthgen/internal/dataset"
)

// phrasePair maps one English phrase to its translation. Pairs are applied
// in listed order with case-insensitive matching. This is keyword
// substitution, not translation: untouched English words stay in place.
type phrasePair struct {
	english string
	local   string
}

var phrasePairs = map[dataset.Language][]phrasePair{
	dataset.LanguageSpanish: {
		{"very satisfied", "muy satisfecho"},
		{"excellent", "excelente"},
		{"outstanding", "excepcional"},
		{"recommend", "recomendar"},
		{"quality", "calidad"},
		{"easy to use", "fácil de usar"},
		{"value for money", "relación calidad-precio"},
		{"happy", "feliz"},
		{"disappointed", "decepcionado"},
		{"not worth", "no vale"},
		{"poor quality", "mala calidad"},
		{"unfortunately", "desafortunadamente"},
		{"frustrated", "frustrado"},
		{"decent", "decente"},
		{"average", "promedio"},
		{"works as expected", "funciona como se esperaba"},
	},
	dataset.LanguageFrench: {
		{"very satisfied", "très satisfait"},
		{"excellent", "excellent"},
		{"outstanding", "exceptionnel"},
		{"recommend", "recommander"},
		{"quality", "qualité"},
		{"easy to use", "facile à utiliser"},
		{"value for money", "rapport qualité-prix"},
		{"happy", "content"},
		{"disappointed", "déçu"},
		{"not worth", "ne vaut pas"},
		{"poor quality", "mauvaise qualité"},
		{"unfortunately", "malheureusement"},
		{"frustrated", "frustré"},
		{"decent", "correct"},
		{"average", "moyen"},
		{"works as expected", "fonctionne comme prévu"},
	},
	dataset.LanguageGerman: {
		{"very satisfied", "sehr zufrieden"},
		{"excellent", "ausgezeichnet"},
		{"outstanding", "hervorragend"},
		{"recommend", "empfehlen"},
		{"quality", "Qualität"},
		{"easy to use", "einfach zu bedienen"},
		{"value for money", "Preis-Leistungs-Verhältnis"},
		{"happy", "glücklich"},
		{"disappointed", "enttäuscht"},
		{"not worth", "nicht wert"},
		{"poor quality", "schlechte Qualität"},
		{"unfortunately", "leider"},
		{"frustrated", "frustriert"},
		{"decent", "anständig"},
		{"average", "durchschnittlich"},
		{"works as expected", "funktioniert wie erwartet"},
	},
	dataset.LanguageItalian: {
		{"very satisfied", "molto soddisfatto"},
		{"excellent", "eccellente"},
		{"outstanding", "eccezionale"},
		{"recommend", "raccomandare"},
		{"quality", "qualità"},
		{"easy to use", "facile da usare"},
		{"value for money", "rapporto qualità-prezzo"},
		{"happy", "felice"},
		{"disappointed", "deluso"},
		{"not worth", "non vale"},
		{"poor quality", "scarsa qualità"},
		{"unfortunately", "purtroppo"},
		{"frustrated", "frustrato"},
		{"decent", "decente"},
		{"average", "nella media"},
		{"works as expected", "funziona come previsto"},
	},
	dataset.LanguagePortuguese: {
		{"very satisfied", "muito satisfeito"},
		{"excellent", "excelente"},
		{"outstanding", "excepcional"},
		{"recommend", "recomendar"},
		{"quality", "qualidade"},
		{"easy to use", "fácil de usar"},
		{"value for money", "custo-benefício"},
		{"happy", "feliz"},
		{"disappointed", "decepcionado"},
		{"not worth", "não vale"},
		{"poor quality", "má qualidade"},
		{"unfortunately", "infelizmente"},
		{"frustrated", "frustrado"},
		{"decent", "decente"},
		{"average", "médio"},
		{"works as expected", "funciona como esperado"},
	},
}

type compiledPair struct {
	re    *regexp.Regexp
	local string
}

var compiledPhrases = func() map[dataset.Language][]compiledPair {
	out := make(map[dataset.Language][]compiledPair, len(phrasePairs))
	for lang, pairs := range phrasePairs {
		compiled := make([]compiledPair, len(pairs))
		for i, p := range pairs {
			compiled[i] = compiledPair{
				re:    regexp.MustCompile("(?i)" + regexp.QuoteMeta(p.english)),
				local: p.local,
			}
		}
		out[lang] = compiled
	}
	return out
}()

// genericTranslated covers text no phrase substitution touched: one bland
// sentence per language and sentiment.
var genericTranslated = map[dataset.Language]map[dataset.Tone]string{
	dataset.LanguageSpanish: {
		dataset.TonePositive: "Excelente producto con muy buenas características.",
		dataset.ToneNegative: "Producto decepcionante con varios problemas.",
		dataset.ToneNeutral:  "Producto básico que cumple su función.",
	},
	dataset.LanguageFrench: {
		dataset.TonePositive: "Excellent produit avec de très bonnes fonctionnalités.",
		dataset.ToneNegative: "Produit décevant avec plusieurs problèmes.",
		dataset.ToneNeutral:  "Produit basique qui remplit sa fonction.",
	},
	dataset.LanguageGerman: {
		dataset.TonePositive: "Ausgezeichnetes Produkt mit sehr guten Funktionen.",
		dataset.ToneNegative: "Enttäuschendes Produkt mit mehreren Problemen.",
		dataset.ToneNeutral:  "Grundlegendes Produkt, das seine Funktion erfüllt.",
	},
	dataset.LanguageItalian: {
		dataset.TonePositive: "Eccellente prodotto con ottime funzionalità.",
		dataset.ToneNegative: "Prodotto deludente con diversi problemi.",
		dataset.ToneNeutral:  "Prodotto base che svolge la sua funzione.",
	},
	dataset.LanguagePortuguese: {
		dataset.TonePositive: "Excelente produto com ótimas funcionalidades.",
		dataset.ToneNegative: "Produto decepcionante com vários problemas.",
		dataset.ToneNeutral:  "Produto básico que cumpre sua função.",
	},
}

// Translate rewrites English text into the target language by substituting
// the known phrases. Text no substitution touches falls back to a generic
// sentence matching the text's apparent sentiment. English and unknown
// languages pass through unchanged.
func Translate(text string, lang dataset.Language) string {
	pairs, ok := compiledPhrases[lang]
	if lang == dataset.LanguageEnglish || !ok {
		return text
	}

	translated := text
	for _, p := range pairs {
		translated = p.re.ReplaceAllString(translated, p.local)
	}
	if translated != text {
		return translated
	}

	generic, ok := genericTranslated[lang]
	if !ok {
		return text
	}
	return generic[sniffSentiment(text)]
}

// sniffSentiment guesses the coarse sentiment from marker words; positive
// markers win over negative ones.
func sniffSentiment(text string) dataset.Tone {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "excellent") || strings.Contains(lower, "great") || strings.Contains(lower, "good"):
		return dataset.TonePositive
	case strings.Contains(lower, "poor") || strings.Contains(lower, "bad") || strings.Contains(lower, "disappointed"):
		return dataset.ToneNegative
	}
	return dataset.ToneNeutral
}
