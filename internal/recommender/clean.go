package recommender

import "strings"

// Limpiadores de metadata cruda. Entrada vacía/faltante -> valor vacío,
// nunca error: los campos malformados se coercen, no se propagan.

// CleanGenreList parte un string de géneros ("Action|Comedy" o "Action, Comedy")
// en tokens en minúscula, sin espacios sobrantes ni vacíos.
func CleanGenreList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	s := strings.ReplaceAll(strings.ToLower(raw), "|", ",")
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CleanIdentifier normaliza nombres a identificadores:
// "Paresh Rawal" -> "pareshrawal". Se quitan los espacios ANTES de convertir
// los delimitadores, así "Actor One|Actor Two" -> "actorone actortwo".
func CleanIdentifier(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "|", " ")
	return s
}

// CleanText es el limpiador simple para campos de texto libre
// (title, genres, keywords, overview) que alimentan al vectorizador.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, "|", " ")
	s = strings.ReplaceAll(s, ",", " ")
	return s
}

// SplitCastList parte el string crudo de cast y normaliza cada entrada por
// separado. Las entradas que quedan vacías se descartan (un identificador
// vacío solo puede producir boosts falsos de cast compartido).
func SplitCastList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	s := strings.ReplaceAll(raw, "|", ",")
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		id := CleanIdentifier(p)
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
