package acr

// statusSuccess is the exact sentinel ACRCloud uses for a successful
// identification. Anything else is treated as non-recognition and the
// payload is handed back to the caller untouched.
const statusSuccess = "Success"

// TrackIdentity is the canonical identity record extracted from a
// successful recognition. Nil fields mean the provider omitted them,
// which is not an error.
type TrackIdentity struct {
	Title       *string
	Artists     []string
	Album       *string
	ReleaseDate *string
	Score       *float64
	ACRID       *string
}

// Recognized reports whether the provider payload carries the success
// sentinel in status.msg.
func Recognized(payload map[string]any) bool {
	status, ok := payload["status"].(map[string]any)
	if !ok {
		return false
	}
	msg, ok := status["msg"].(string)
	return ok && msg == statusSuccess
}

// Identify extracts the identity of the first music match. The provider
// orders matches itself; no re-ranking happens here. The second return
// is false when the payload is not a successful recognition.
func Identify(payload map[string]any) (TrackIdentity, bool) {
	if !Recognized(payload) {
		return TrackIdentity{}, false
	}
	metadata, ok := payload["metadata"].(map[string]any)
	if !ok {
		return TrackIdentity{}, false
	}
	matches, ok := metadata["music"].([]any)
	if !ok || len(matches) == 0 {
		return TrackIdentity{}, false
	}
	music, ok := matches[0].(map[string]any)
	if !ok {
		return TrackIdentity{}, false
	}

	identity := TrackIdentity{
		Title:       stringField(music, "title"),
		Artists:     artistNames(music["artists"]),
		ReleaseDate: stringField(music, "release_date"),
		Score:       numberField(music, "score"),
		ACRID:       stringField(music, "acrid"),
	}
	if album, ok := music["album"].(map[string]any); ok {
		identity.Album = stringField(album, "name")
	}
	return identity, true
}

func artistNames(v any) []string {
	names := make([]string, 0, 4)
	list, ok := v.([]any)
	if !ok {
		return names
	}
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := obj["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}

func stringField(obj map[string]any, key string) *string {
	if s, ok := obj[key].(string); ok {
		return &s
	}
	return nil
}

func numberField(obj map[string]any, key string) *float64 {
	if f, ok := obj[key].(float64); ok {
		return &f
	}
	return nil
}
