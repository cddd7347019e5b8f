package cleaning

import "strconv"

// Mode selects which field of a row is being cleaned.
// Each mode carries its own column assignment, extraction results and rules;
// all modes share the same row collection.
type Mode string

const (
	// ModeSize cleans dimension strings ("12 x 24", "M122") into quote-inch labels.
	ModeSize Mode = "size"
	// ModeName cleans free-text product descriptions into canonical product names.
	ModeName Mode = "name"
	// ModePrice cleans price text into two-decimal numbers. Purely numeric, no dictionary.
	ModePrice Mode = "price"
)

// Valid reports whether m is one of the supported cleaning modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeSize, ModeName, ModePrice:
		return true
	default:
		return false
	}
}

// Status is the confidence classification of one extraction result.
type Status string

const (
	// StatusUnknown means no usable value could be derived and the operator
	// has not supplied one.
	StatusUnknown Status = "unknown"
	// StatusMatched means the extracted value equals (case-insensitively) a
	// value already present in the mode's dictionary, or, for price, that the
	// numeric parse succeeded.
	StatusMatched Status = "matched"
	// StatusNew means a non-empty value was extracted but it matches no known
	// dictionary value yet.
	StatusNew Status = "new"
)

// SheetData is the parsed spreadsheet a session operates on.
// It is immutable once the session is created; the row index is the stable
// row identity.
type SheetData struct {
	// Headers is the ordered list of column names. Names are unique.
	Headers []string `json:"headers"`

	// Rows maps column name to raw cell text, one map per spreadsheet row.
	Rows []map[string]string `json:"rows"`
}

// HasColumn reports whether the sheet carries the named column.
func (s *SheetData) HasColumn(name string) bool {
	for _, h := range s.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// ModeResult holds the extraction state of one row for one mode.
type ModeResult struct {
	// TargetText is the raw text pulled from the mode's assigned column.
	TargetText string `json:"target_text"`

	// ExtractedValue is the current best value. Editable by the operator.
	ExtractedValue string `json:"extracted_value"`

	// Status classifies ExtractedValue against the mode's dictionary.
	Status Status `json:"status"`

	// ManualOverride marks values set directly by the operator. Rescans must
	// not silently discard such values for target text they have already seen.
	ManualOverride bool `json:"manual_override"`

	// SelectionSource is the exact substring the operator selected when the
	// correction came from a free-text selection, else empty. It is tracked
	// separately from ExtractedValue so it can become a new matcher fragment.
	SelectionSource string `json:"selection_source,omitempty"`
}

// ParsedRow is one spreadsheet row under cleaning.
type ParsedRow struct {
	// ID is the stable row identifier (original row index, string-encoded).
	ID string `json:"id"`

	// OriginalData is the full original row. Never mutated.
	OriginalData map[string]string `json:"original_data"`

	// Results holds the per-mode extraction state.
	Results map[Mode]*ModeResult `json:"results"`
}

// Result returns the row's state for the given mode, creating it on first use.
func (r *ParsedRow) Result(mode Mode) *ModeResult {
	if r.Results == nil {
		r.Results = make(map[Mode]*ModeResult)
	}
	res, ok := r.Results[mode]
	if !ok {
		res = &ModeResult{Status: StatusUnknown}
		r.Results[mode] = res
	}
	return res
}

// newParsedRow builds the row model for one source row.
func newParsedRow(index int, data map[string]string) *ParsedRow {
	original := make(map[string]string, len(data))
	for k, v := range data {
		original[k] = v
	}
	return &ParsedRow{
		ID:           strconv.Itoa(index),
		OriginalData: original,
		Results:      make(map[Mode]*ModeResult),
	}
}

// KnownValue is a canonical label plus the alias fragments that resolve to it.
// Labels are unique within a dictionary, compared case-insensitively.
type KnownValue struct {
	// Label is the canonical value extractions converge to.
	Label string `json:"label"`

	// Matchers are raw-text fragments; a case-insensitive substring hit on any
	// of them resolves a row to Label.
	Matchers []string `json:"matchers,omitempty"`
}

// Alias maps a raw-text fragment to a canonical value. Many alias texts may
// map to the same canonical value.
type Alias struct {
	Text   string `json:"text"`
	Mapped string `json:"mapped"`
}

// MatchResult is the outcome of one Matcher evaluation.
type MatchResult struct {
	Value  string `json:"value"`
	Status Status `json:"status"`
}
