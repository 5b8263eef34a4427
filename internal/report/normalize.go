package report

import (
	"fmt"
	"sort"
	"strings"
)

// NormalizeError means the parsed value had a fundamentally wrong
// top-level shape (array or scalar where an object was promised).
// Field-level shape mismatches never raise; they degrade to empty
// containers instead.
type NormalizeError struct {
	Value any
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("report: top-level value is %T, want object", e.Value)
}

// The generation provider's naming is not contractually fixed, so each
// logical field accepts an ordered list of candidate keys.
var (
	publisherKeys  = []string{"publisher", "publishers", "publishing", "publisher_name"}
	masterKeys     = []string{"master_rights_holder", "master_rights", "label", "labels", "record_label"}
	proKeys        = []string{"pros", "pro", "performing_rights_organizations", "performance_rights_organizations"}
	licensingKeys  = []string{"licensing_paths", "licensing_sources", "licensing"}
	sourceLinkKeys = []string{"source_links", "sources", "links", "references"}
)

// Normalize maps an arbitrarily shaped parsed object onto the fixed
// report schema. It only errors for a non-object top level; every
// field-level surprise yields an empty container for that field.
func Normalize(value any) (NormalizedReport, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return Empty(), &NormalizeError{Value: value}
	}

	rep := Empty()
	if v, ok := firstPresent(obj, publisherKeys...); ok {
		rep.Publisher = nameList(v)
	}
	if v, ok := firstPresent(obj, masterKeys...); ok {
		rep.MasterRightsHolder = nameList(v)
	}
	if v, ok := firstPresent(obj, proKeys...); ok {
		rep.PROs = nameList(v)
	}
	if v, ok := firstPresent(obj, licensingKeys...); ok {
		rep.LicensingPaths = licensingPaths(v)
	}
	if v, ok := firstPresent(obj, sourceLinkKeys...); ok {
		rep.SourceLinks = stringList(v)
	}
	return rep, nil
}

func firstPresent(obj map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// nameList coerces a value into a list of names. Accepted shapes: a
// list whose elements are strings or objects with a "name" field, or a
// single bare string. Anything else is an empty list.
func nameList(v any) []string {
	switch x := v.(type) {
	case []any:
		names := make([]string, 0, len(x))
		for _, entry := range x {
			if name, ok := nameOf(entry); ok {
				names = append(names, name)
			}
		}
		return names
	case string:
		return []string{x}
	default:
		return []string{}
	}
}

// nameOf extracts a display name from a list element, which may be a
// plain string or an object carrying a "name" field.
func nameOf(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case map[string]any:
		if name, ok := x["name"].(string); ok {
			return name, true
		}
	}
	return "", false
}

func licensingPaths(v any) LicensingPaths {
	paths := LicensingPaths{
		Composition:     []string{},
		MasterRecording: []string{},
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return paths
	}
	paths.Composition = compositionEntries(obj["composition"])
	paths.MasterRecording = masterRecordingEntries(obj["master_recording"])
	return paths
}

// compositionEntries flattens the composition sub-field. A key->string
// map becomes "Title Cased Key: value" lines; a list of objects becomes
// "type: organization" lines.
func compositionEntries(v any) []string {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			if _, ok := x[k].(string); ok {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		entries := make([]string, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, titleCaseKey(k)+": "+x[k].(string))
		}
		return entries
	case []any:
		return pairEntries(x)
	default:
		return []string{}
	}
}

// masterRecordingEntries follows the list-of-objects rule, or treats a
// bare string as the sole entry.
func masterRecordingEntries(v any) []string {
	switch x := v.(type) {
	case []any:
		return pairEntries(x)
	case string:
		return []string{x}
	default:
		return []string{}
	}
}

// pairEntries renders "type: organization" for each object carrying
// both fields; entries missing either are silently dropped.
func pairEntries(list []any) []string {
	entries := make([]string, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		kind, ok := obj["type"].(string)
		if !ok {
			continue
		}
		org, ok := obj["organization"].(string)
		if !ok {
			continue
		}
		entries = append(entries, kind+": "+org)
	}
	return entries
}

func stringList(v any) []string {
	switch x := v.(type) {
	case []any:
		out := make([]string, 0, len(x))
		for _, entry := range x {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{x}
	default:
		return []string{}
	}
}

// titleCaseKey turns "sync_license" into "Sync License".
func titleCaseKey(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
