package recommender

import (
	"strings"

	"cinematch-backend/internal/models"
)

// Pesos de cada campo en el soup. Más repeticiones = más frecuencia de
// término = más influencia en el vector bag-of-words.
const (
	weightTitle    = 2
	weightGenres   = 4
	weightCast     = 5
	weightDirector = 5
	weightKeywords = 3
	weightOverview = 1
)

// BuildSoup concatena los campos normalizados de una película en un solo
// blob de texto, repitiendo cada campo según su peso. El orden de
// concatenación no afecta al vector (bag-of-words); el peso sí.
func BuildSoup(raw models.RawMovie) string {
	var b strings.Builder
	appendWeighted(&b, CleanText(raw.Title), weightTitle)
	appendWeighted(&b, CleanText(raw.Genres), weightGenres)
	appendWeighted(&b, CleanIdentifier(raw.Cast), weightCast)
	appendWeighted(&b, CleanIdentifier(raw.Director), weightDirector)
	appendWeighted(&b, CleanText(raw.Keywords), weightKeywords)
	appendWeighted(&b, CleanText(raw.Overview), weightOverview)
	return b.String()
}

func appendWeighted(b *strings.Builder, field string, weight int) {
	for i := 0; i < weight; i++ {
		b.WriteString(field)
		b.WriteByte(' ')
	}
}
