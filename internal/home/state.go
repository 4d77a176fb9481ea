package home

import (
	"net/url"
	"strings"

	"novelverse/internal/view"
	"novelverse/pkg/models"
)

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var siteStats = []Stat{
	{Label: "Total Novels", Value: "12,845"},
	{Label: "Active Authors", Value: "2,341"},
	{Label: "Reviews", Value: "89,234"},
	{Label: "Monthly Readers", Value: "156K"},
}

type Page struct {
	Featured []view.Card `json:"featured"`
	Stats    []Stat      `json:"stats"`
}

func BuildPage(novels []models.NovelSummary) Page {
	return Page{
		Featured: view.Cards(novels),
		Stats:    append([]Stat(nil), siteStats...),
	}
}

// SearchTarget is where a submitted search goes. ok is false for a blank
// query, which keeps the reader on the current page.
func SearchTarget(q string) (target string, ok bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", false
	}
	return "/browse?" + url.Values{"search": {q}}.Encode(), true
}
