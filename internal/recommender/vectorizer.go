package recommender

import (
	"regexp"
	"sort"
	"strings"
)

// Tokens de 2+ caracteres de palabra (la regla por defecto de un
// CountVectorizer); los de una sola letra y la puntuación se descartan.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_]+`)

// Vocabulary es el vocabulario compartido entrenado una sola vez sobre todo
// el corpus de soups. Terms está en orden lexicográfico y define las columnas
// de los vectores; Index es el mapeo término -> columna.
type Vocabulary struct {
	Terms []string
	Index map[string]int
}

// Tokenize pasa un texto a tokens en minúscula, sin stop words.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if IsStopWord(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FitVocabulary arma el vocabulario compartido sobre todos los soups,
// recortado a los maxFeatures términos más frecuentes del corpus
// (maxFeatures <= 0 significa sin tope). Determinismo: los empates de
// frecuencia al recortar se rompen por orden lexicográfico, y las columnas
// finales quedan en orden lexicográfico, así el mismo catálogo y la misma
// configuración producen siempre el mismo artefacto.
func FitVocabulary(soups []string, maxFeatures int) *Vocabulary {
	freq := make(map[string]int)
	for _, soup := range soups {
		for _, t := range Tokenize(soup) {
			freq[t]++
		}
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}

	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if freq[terms[i]] != freq[terms[j]] {
				return freq[terms[i]] > freq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxFeatures]
	}

	sort.Strings(terms)

	idx := make(map[string]int, len(terms))
	for i, t := range terms {
		idx[t] = i
	}
	return &Vocabulary{Terms: terms, Index: idx}
}

// Vectorize produce el vector de frecuencias de términos de un soup,
// alineado al vocabulario compartido.
func (v *Vocabulary) Vectorize(soup string) []float64 {
	vec := make([]float64, len(v.Terms))
	for _, t := range Tokenize(soup) {
		if col, ok := v.Index[t]; ok {
			vec[col]++
		}
	}
	return vec
}

// NewVocabulary reconstruye un vocabulario desde sus términos persistidos.
func NewVocabulary(terms []string) *Vocabulary {
	idx := make(map[string]int, len(terms))
	for i, t := range terms {
		idx[t] = i
	}
	return &Vocabulary{Terms: terms, Index: idx}
}
