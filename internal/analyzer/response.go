package analyzer

import (
	"encoding/json"

	"soundclaim/internal/acr"
	"soundclaim/internal/report"
)

// Analysis is the top-level reply for one clip. The wire shape depends
// on Success: a recognized clip carries the identity, the search links
// and the copyright report; an unrecognized one carries the message and
// the raw provider payload for diagnostics.
type Analysis struct {
	Success bool

	// Set when Success is false.
	Message string
	Raw     map[string]any

	// Set when Success is true.
	Identity            acr.TrackIdentity
	OfficialSearchLinks map[string]string
	CopyrightReport     report.NormalizedReport
}

func (a Analysis) MarshalJSON() ([]byte, error) {
	if !a.Success {
		return json.Marshal(struct {
			Success bool           `json:"success"`
			Message string         `json:"message"`
			Raw     map[string]any `json:"raw"`
		}{
			Success: false,
			Message: a.Message,
			Raw:     a.Raw,
		})
	}
	return json.Marshal(struct {
		Success             bool                    `json:"success"`
		Title               *string                 `json:"title"`
		Artists             []string                `json:"artists"`
		Album               *string                 `json:"album"`
		ReleaseDate         *string                 `json:"release_date"`
		ConfidenceScore     *float64                `json:"confidence_score"`
		ACRID               *string                 `json:"acrid"`
		OfficialSearchLinks map[string]string       `json:"official_search_links"`
		CopyrightReport     report.NormalizedReport `json:"copyright_report"`
	}{
		Success:             true,
		Title:               a.Identity.Title,
		Artists:             a.Identity.Artists,
		Album:               a.Identity.Album,
		ReleaseDate:         a.Identity.ReleaseDate,
		ConfidenceScore:     a.Identity.Score,
		ACRID:               a.Identity.ACRID,
		OfficialSearchLinks: a.OfficialSearchLinks,
		CopyrightReport:     a.CopyrightReport,
	})
}
