package config

import (
	"os"
	"sync"
)

// Both sheets are published read-only exports: the roster as a CSV export,
// the selection queue through the gviz table-query endpoint (JSONP).
const (
	defaultRosterURL    = "https://docs.google.com/spreadsheets/d/1ADVbUldwgn6fFEBq0cXEMdPnZRNYc4XpfFMro-FpCPA/export?format=csv"
	defaultSelectionURL = "https://docs.google.com/spreadsheets/d/1l7JQiHkOV2y1QMBuK5erGLWbgcSv-CEIsqv3KW_YYd4/gviz/tq?tqx=out:json"
)

type SheetConfig struct {
	RosterURL    string
	SelectionURL string
}

var (
	sheetConfig *SheetConfig
	sheetOnce   sync.Once
)

func LoadSheetConfig() *SheetConfig {
	sheetOnce.Do(func() {
		rosterURL := os.Getenv("SHEET_ROSTER_URL")
		if rosterURL == "" {
			rosterURL = defaultRosterURL
		}
		selectionURL := os.Getenv("SHEET_SELECTION_URL")
		if selectionURL == "" {
			selectionURL = defaultSelectionURL
		}
		sheetConfig = &SheetConfig{
			RosterURL:    rosterURL,
			SelectionURL: selectionURL,
		}
	})
	return sheetConfig
}
