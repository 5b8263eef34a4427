// Package links builds official rights-organization search URLs for an
// identified track. Pure string templating: no network calls, cannot
// fail.
package links

import (
	"net/url"
	"strings"
)

// OfficialSearchLinks maps organization keys to repertoire search pages
// for the given track. The key set is fixed (bmi, ascap, socan).
func OfficialSearchLinks(title string, artists []string) map[string]string {
	query := url.QueryEscape(strings.TrimSpace(title + " " + strings.Join(artists, " ")))
	return map[string]string{
		"bmi":   "https://repertoire.bmi.com/Search/Search?SearchForm.Main_Search_Text=" + query + "&SearchForm.Search_Type=all",
		"ascap": "https://www.ascap.com/repertory#/ace/search/title/" + url.PathEscape(strings.TrimSpace(title)),
		"socan": "https://online.socan.com/copyright/SearchWorks?searchText=" + query,
	}
}
