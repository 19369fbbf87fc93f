package recommender

import (
	"strings"
	"testing"

	"cinematch-backend/internal/models"
)

// La frecuencia final de los tokens de cada campo debe ser exactamente el
// múltiplo de su peso (contrato directo sobre el vector, no solo ranking).
func TestSoupFieldWeights(t *testing.T) {
	raw := models.RawMovie{
		Title:    "Zyxtitle",
		Genres:   "Zyxgenre",
		Cast:     "Zyx Actor",
		Director: "Zyx Director",
		Keywords: "Zyxkeyword",
		Overview: "Zyxoverview",
	}
	soup := BuildSoup(raw)
	vocab := FitVocabulary([]string{soup}, 0)
	vec := vocab.Vectorize(soup)

	want := map[string]float64{
		"zyxtitle":    2,
		"zyxgenre":    4,
		"zyxactor":    5,
		"zyxdirector": 5,
		"zyxkeyword":  3,
		"zyxoverview": 1,
	}
	for term, freq := range want {
		col, ok := vocab.Index[term]
		if !ok {
			t.Fatalf("término %q no está en el vocabulario %v", term, vocab.Terms)
		}
		if vec[col] != freq {
			t.Errorf("frecuencia de %q = %v, want %v", term, vec[col], freq)
		}
	}
}

// Duplicar la repetición del título (peso 2 vs 1) tiene que aumentar
// estrictamente la frecuencia de un token de título único en el catálogo.
func TestTitleWeightDoublesTermFrequency(t *testing.T) {
	title := "uniquetitletoken"

	single := title + " "
	doubled := strings.Repeat(title+" ", weightTitle)

	vocab := FitVocabulary([]string{single, doubled}, 0)
	col, ok := vocab.Index[title]
	if !ok {
		t.Fatalf("token %q no vectorizado", title)
	}

	tfSingle := vocab.Vectorize(single)[col]
	tfDoubled := vocab.Vectorize(doubled)[col]
	if tfDoubled <= tfSingle {
		t.Errorf("tf con peso %d = %v, debería ser > tf con peso 1 = %v",
			weightTitle, tfDoubled, tfSingle)
	}
	if tfDoubled != float64(weightTitle) {
		t.Errorf("tf con peso %d = %v, want %d", weightTitle, tfDoubled, weightTitle)
	}
}

func TestSoupOfEmptyMovie(t *testing.T) {
	soup := BuildSoup(models.RawMovie{})
	if strings.TrimSpace(soup) != "" {
		t.Errorf("soup de película vacía = %q, want solo espacios", soup)
	}
}
