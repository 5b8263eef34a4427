package links

import (
	"strings"
	"testing"
)

func TestOfficialSearchLinks(t *testing.T) {
	got := OfficialSearchLinks("Bohemian Rhapsody", []string{"Queen"})

	for _, key := range []string{"bmi", "ascap", "socan"} {
		if got[key] == "" {
			t.Fatalf("missing %s link", key)
		}
	}
	if !strings.Contains(got["bmi"], "Bohemian+Rhapsody+Queen") {
		t.Fatalf("bmi link not query-escaped: %s", got["bmi"])
	}
	if !strings.Contains(got["ascap"], "Bohemian%20Rhapsody") {
		t.Fatalf("ascap link not path-escaped: %s", got["ascap"])
	}
}

func TestOfficialSearchLinks_EmptyIdentity(t *testing.T) {
	got := OfficialSearchLinks("", nil)
	if len(got) != 3 {
		t.Fatalf("expected all three organizations, got %#v", got)
	}
	for key, link := range got {
		if !strings.HasPrefix(link, "https://") {
			t.Fatalf("%s link malformed: %s", key, link)
		}
	}
}
