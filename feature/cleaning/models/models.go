// Package models defines the request and response types for the cleaning
// feature.
package models

// SessionSummary describes a session to the client.
type SessionSummary struct {
	ID                   string            `json:"id"`
	Filename             string            `json:"filename"`
	Format               string            `json:"format"`
	Phase                string            `json:"phase"`
	ActiveMode           string            `json:"active_mode"`
	RowCount             int               `json:"row_count"`
	Headers              []string          `json:"headers"`
	Assignments          map[string]string `json:"assignments"`
	Warnings             []string          `json:"warnings"`
	SearchDebounceMillis int               `json:"search_debounce_millis"`
}

// ModeResultView is one mode's result for one row.
type ModeResultView struct {
	TargetText      string `json:"target_text"`
	Value           string `json:"value"`
	Status          string `json:"status"`
	ManualOverride  bool   `json:"manual_override"`
	SelectionSource string `json:"selection_source,omitempty"`
}

// RowView is one row with its per-mode results.
type RowView struct {
	ID       string                    `json:"id"`
	Original map[string]string         `json:"original"`
	Results  map[string]ModeResultView `json:"results"`
}

// SetModeRequest is the body for POST /cleaning/sessions/:id/mode.
type SetModeRequest struct {
	Mode string `json:"mode"`
}

// AssignColumnRequest is the body for POST /cleaning/sessions/:id/columns.
type AssignColumnRequest struct {
	Mode   string `json:"mode"`
	Column string `json:"column"`
}

// EditRowRequest is the body for PATCH /cleaning/sessions/:id/rows/:rowID.
type EditRowRequest struct {
	Mode  string `json:"mode"`
	Value string `json:"value"`
}

// SelectionRequest is the body for POST .../rows/:rowID/selection.
type SelectionRequest struct {
	Mode string `json:"mode"`
	Text string `json:"text"`
}

// PromoteRequest is the body for POST .../rows/:rowID/promote.
type PromoteRequest struct {
	Mode string `json:"mode"`
}

// SearchResponse carries product-name search results. Seq lets clients and
// tests observe the supersession behavior: a response marked superseded was
// overtaken by a newer query and carries no names.
type SearchResponse struct {
	Seq        uint64   `json:"seq"`
	Query      string   `json:"query"`
	Names      []string `json:"names"`
	Superseded bool     `json:"superseded"`
}

// ExportResponse is the JSON form of the export.
type ExportResponse struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}
