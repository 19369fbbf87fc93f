package recommender

import (
	"reflect"
	"testing"
)

func TestTokenizeDropsStopWordsAndShortTokens(t *testing.T) {
	got := Tokenize("The wizard and a frog of Oz went home")
	want := []string{"wizard", "frog", "oz", "went", "home"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestFitVocabularyCapWithLexicographicTies(t *testing.T) {
	// "zebra" y "apple" empatan en frecuencia: al recortar a 2 entra
	// "apple" (orden lexicográfico) junto con "movie" (más frecuente).
	soups := []string{
		"movie movie movie zebra apple",
		"movie zebra apple",
	}
	vocab := FitVocabulary(soups, 2)
	want := []string{"apple", "movie"} // columnas en orden lexicográfico
	if !reflect.DeepEqual(vocab.Terms, want) {
		t.Errorf("Terms = %v, want %v", vocab.Terms, want)
	}
}

func TestFitVocabularyDeterministic(t *testing.T) {
	soups := []string{
		"alpha beta gamma delta epsilon",
		"beta gamma delta",
		"gamma delta alpha zeta",
	}
	a := FitVocabulary(soups, 4)
	b := FitVocabulary(soups, 4)
	if !reflect.DeepEqual(a.Terms, b.Terms) {
		t.Errorf("vocabulario no determinista: %v vs %v", a.Terms, b.Terms)
	}
}

func TestVectorizeAlignsToSharedVocabulary(t *testing.T) {
	vocab := FitVocabulary([]string{"gato perro", "gato pez"}, 0)
	vec := vocab.Vectorize("gato gato pez ave")

	if len(vec) != len(vocab.Terms) {
		t.Fatalf("len(vec) = %d, want %d", len(vec), len(vocab.Terms))
	}
	if got := vec[vocab.Index["gato"]]; got != 2 {
		t.Errorf("tf(gato) = %v, want 2", got)
	}
	if got := vec[vocab.Index["pez"]]; got != 1 {
		t.Errorf("tf(pez) = %v, want 1", got)
	}
	// "ave" no está en el vocabulario compartido: se ignora
	if _, ok := vocab.Index["ave"]; ok {
		t.Error("ave no debería estar en el vocabulario")
	}
}

func TestNewVocabularyRoundTrip(t *testing.T) {
	orig := FitVocabulary([]string{"uno dos tres", "dos tres cuatro"}, 0)
	loaded := NewVocabulary(orig.Terms)
	if !reflect.DeepEqual(orig.Index, loaded.Index) {
		t.Error("el vocabulario recargado no coincide con el original")
	}
}
