package acr

import (
	"reflect"
	"testing"
)

func successPayload() map[string]any {
	return map[string]any{
		"status": map[string]any{"msg": "Success", "code": 0.0},
		"metadata": map[string]any{
			"music": []any{
				map[string]any{
					"title":        "Bohemian Rhapsody",
					"artists":      []any{map[string]any{"name": "Queen"}},
					"album":        map[string]any{"name": "A Night at the Opera"},
					"release_date": "1975-10-31",
					"score":        100.0,
					"acrid":        "6049f11da7095e8bb8266871d4a70873",
				},
				map[string]any{"title": "Some Cover Version"},
			},
		},
	}
}

func TestIdentify_FirstMatchWins(t *testing.T) {
	identity, ok := Identify(successPayload())
	if !ok {
		t.Fatal("expected recognition")
	}
	if identity.Title == nil || *identity.Title != "Bohemian Rhapsody" {
		t.Fatalf("Title = %v", identity.Title)
	}
	if !reflect.DeepEqual(identity.Artists, []string{"Queen"}) {
		t.Fatalf("Artists = %#v", identity.Artists)
	}
	if identity.Album == nil || *identity.Album != "A Night at the Opera" {
		t.Fatalf("Album = %v", identity.Album)
	}
	if identity.ReleaseDate == nil || *identity.ReleaseDate != "1975-10-31" {
		t.Fatalf("ReleaseDate = %v", identity.ReleaseDate)
	}
	if identity.Score == nil || *identity.Score != 100 {
		t.Fatalf("Score = %v", identity.Score)
	}
	if identity.ACRID == nil || *identity.ACRID != "6049f11da7095e8bb8266871d4a70873" {
		t.Fatalf("ACRID = %v", identity.ACRID)
	}
}

func TestIdentify_MissingFieldsAreNotErrors(t *testing.T) {
	payload := map[string]any{
		"status": map[string]any{"msg": "Success"},
		"metadata": map[string]any{
			"music": []any{map[string]any{"title": "Untagged Demo"}},
		},
	}
	identity, ok := Identify(payload)
	if !ok {
		t.Fatal("expected recognition")
	}
	if identity.Album != nil || identity.ReleaseDate != nil || identity.Score != nil || identity.ACRID != nil {
		t.Fatalf("expected nil optional fields, got %+v", identity)
	}
	if identity.Artists == nil || len(identity.Artists) != 0 {
		t.Fatalf("Artists must be an empty non-nil slice, got %#v", identity.Artists)
	}
}

func TestIdentify_NotRecognized(t *testing.T) {
	payloads := []map[string]any{
		{"status": map[string]any{"msg": "No result"}},
		{"status": map[string]any{"msg": "success"}}, // sentinel is case-sensitive
		{"status": "broken"},
		{},
		{"status": map[string]any{"msg": "Success"}}, // no metadata
		{"status": map[string]any{"msg": "Success"}, "metadata": map[string]any{"music": []any{}}},
	}
	for _, payload := range payloads {
		if _, ok := Identify(payload); ok {
			t.Fatalf("Identify(%#v) unexpectedly succeeded", payload)
		}
	}
}

func TestRecognized(t *testing.T) {
	if !Recognized(successPayload()) {
		t.Fatal("expected Recognized = true")
	}
	if Recognized(map[string]any{"status": map[string]any{"msg": "No result"}}) {
		t.Fatal("expected Recognized = false")
	}
}
