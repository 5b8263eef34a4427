package report

import (
	"strings"
	"testing"

	"soundclaim/internal/acr"
)

func TestBuildPrompt(t *testing.T) {
	title := "Bohemian Rhapsody"
	album := "A Night at the Opera"
	release := "1975-10-31"
	prompt := BuildPrompt(acr.TrackIdentity{
		Title:       &title,
		Artists:     []string{"Queen", "Freddie Mercury"},
		Album:       &album,
		ReleaseDate: &release,
	})

	for _, want := range []string{
		"Title: Bohemian Rhapsody",
		"Artist(s): Queen, Freddie Mercury",
		"Album: A Night at the Opera",
		"Release Date: 1975-10-31",
		"ONLY valid JSON",
		"licensing_sources",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_MissingFields(t *testing.T) {
	prompt := BuildPrompt(acr.TrackIdentity{})
	if !strings.Contains(prompt, "Title: \n") {
		t.Fatalf("nil title should render empty, got:\n%s", prompt)
	}
	if BuildPrompt(acr.TrackIdentity{}) != prompt {
		t.Fatalf("prompt must be deterministic")
	}
}
