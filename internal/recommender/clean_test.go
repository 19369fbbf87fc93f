package recommender

import (
	"reflect"
	"testing"
)

func TestCleanGenreList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Action|Comedy", []string{"action", "comedy"}},
		{"Action, Comedy , Drama", []string{"action", "comedy", "drama"}},
		{"Drama", []string{"drama"}},
		{"|,|", []string{}},
		{"", []string{}},
	}
	for _, tc := range cases {
		got := CleanGenreList(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("CleanGenreList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCleanIdentifier(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Paresh Rawal", "pareshrawal"},
		{"Actor One|Actor Two", "actorone actortwo"},
		{"Actor One, Actor Two", "actorone actortwo"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CleanIdentifier(tc.in); got != tc.want {
			t.Errorf("CleanIdentifier(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Science Fiction|Thriller", "science fiction thriller"},
		{"Love, Death", "love  death"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CleanText(tc.in); got != tc.want {
			t.Errorf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitCastList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Actor One|Actor Two", []string{"actorone", "actortwo"}},
		{"Actor One, Actor Two,", []string{"actorone", "actortwo"}},
		{"", []string{}},
	}
	for _, tc := range cases {
		got := SplitCastList(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitCastList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
