package resources

import (
	"reflect"
	"strings"
	"testing"
)

func TestSuggest_Deterministic(t *testing.T) {
	first := Suggest("Fractions", "Math", "5")
	second := Suggest("Fractions", "Math", "5")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("suggestions differ:\n%+v\n%+v", first, second)
	}
}

func TestSuggest_Shape(t *testing.T) {
	set := Suggest("Fractions", "Math", "5")
	if len(set.Videos) != 4 {
		t.Fatalf("expected 4 video links, got %d", len(set.Videos))
	}
	if len(set.Web) != 4 {
		t.Fatalf("expected 4 web links, got %d", len(set.Web))
	}
	for _, l := range set.Videos {
		if !strings.HasPrefix(l.URL, "https://www.youtube.com/") {
			t.Fatalf("video link not on youtube: %q", l.URL)
		}
		if l.Title == "" || l.Source == "" {
			t.Fatalf("incomplete link: %+v", l)
		}
	}
}

func TestSuggest_EncodesQueries(t *testing.T) {
	set := Suggest("Number Systems", "Math", "9")

	ncert := set.Videos[1]
	if !strings.Contains(ncert.URL, "query=Number+Systems+Math+class+9") {
		t.Fatalf("query not encoded: %q", ncert.URL)
	}

	diksha := set.Web[2]
	if !strings.Contains(diksha.URL, "searchQuery=Number+Systems") {
		t.Fatalf("search query not encoded: %q", diksha.URL)
	}
	if !strings.Contains(diksha.URL, "board=CBSE") {
		t.Fatalf("board missing: %q", diksha.URL)
	}
}

func TestClassNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5", "5"},
		{"Class 7", "7"},
		{"class 7", "7"},
		{"Grade 12", "12"},
		{" 8 ", "8"},
	}
	for _, tc := range cases {
		if got := classNumber(tc.in); got != tc.want {
			t.Errorf("classNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSuggest_TrimsInputs(t *testing.T) {
	set := Suggest("  Fractions ", " Math ", "5")
	if set.Videos[0].Title != "Fractions - CBSE Official" {
		t.Fatalf("topic not trimmed: %q", set.Videos[0].Title)
	}
	if !strings.Contains(set.Videos[0].URL, "query=Fractions+class+5+Math") {
		t.Fatalf("whitespace leaked into query: %q", set.Videos[0].URL)
	}
}
