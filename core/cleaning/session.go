package cleaning

import (
	"fmt"
	"strings"
)

// Phase is the lifecycle state of a cleaning session for its active mode.
type Phase string

const (
	// PhaseSelectColumn means the active mode has no column assignment yet.
	PhaseSelectColumn Phase = "select_column"
	// PhaseAnalyze means the active mode has scanned rows ready for review.
	PhaseAnalyze Phase = "analyze"
)

// Session is the single source of truth for one cleaning run: the immutable
// sheet, the row models, the per-mode column assignments and the session's
// working dictionary.
//
// A session is not safe for concurrent use; callers serialize user actions
// (the feature layer holds one mutex per session).
type Session struct {
	// ID is the session identifier.
	ID string

	// Sheet is the uploaded spreadsheet. Read-only after construction.
	Sheet SheetData

	// Rows is the ordered row collection, one entry per sheet row.
	Rows []*ParsedRow

	// Assignments maps each mode to its assigned column, once chosen.
	// Assignments persist independently across mode switches.
	Assignments map[Mode]string

	// ActiveMode is the mode currently shown to the operator.
	ActiveMode Mode

	// Dict is the session's working dictionary. Nil until the gated initial
	// load has completed (or failed over to an empty dictionary).
	Dict *Dictionary

	// Warnings collects non-fatal notices (dictionary fetch failures,
	// best-effort store writes that did not land).
	Warnings []string
}

// NewSession validates the sheet and builds the row collection.
// A sheet with no data rows is rejected up front.
func NewSession(id string, sheet SheetData) (*Session, error) {
	if len(sheet.Rows) == 0 {
		return nil, ErrEmptySheet
	}

	s := &Session{
		ID:          id,
		Sheet:       sheet,
		Rows:        make([]*ParsedRow, 0, len(sheet.Rows)),
		Assignments: make(map[Mode]string),
		ActiveMode:  ModeSize,
	}
	for i, row := range sheet.Rows {
		s.Rows = append(s.Rows, newParsedRow(i, row))
	}
	return s, nil
}

// Phase reports the lifecycle state for the active mode. Switching back to a
// mode whose column is already assigned re-displays its computed results;
// a mode without an assignment shows column selection.
func (s *Session) Phase() Phase {
	if _, ok := s.Assignments[s.ActiveMode]; ok {
		return PhaseAnalyze
	}
	return PhaseSelectColumn
}

// SetActiveMode switches the mode shown to the operator. No recomputation
// happens here; each mode's results are kept as-is.
func (s *Session) SetActiveMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrModeUnsupported, mode)
	}
	s.ActiveMode = mode
	return nil
}

// AssignColumn selects which spreadsheet column feeds the matcher for a mode
// and runs a full rescan of all rows for that mode. Rows carrying a manual
// override for identical target text keep the operator's value; re-selecting
// a column must not discard decisions for text the session has already seen.
func (s *Session) AssignColumn(mode Mode, column string) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrModeUnsupported, mode)
	}
	if !s.Sheet.HasColumn(column) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	if s.Dict == nil {
		// The initial dictionary load gates the first scan.
		s.Dict = NewDictionary()
	}

	s.Assignments[mode] = column
	s.ActiveMode = mode
	for _, row := range s.Rows {
		target := row.OriginalData[column]
		res := row.Result(mode)
		if res.ManualOverride && res.TargetText == target {
			continue
		}
		m := Match(target, mode, s.Dict)
		res.TargetText = target
		res.ExtractedValue = m.Value
		res.Status = m.Status
		res.ManualOverride = false
		res.SelectionSource = ""
	}
	return nil
}

// ClearAssignment drops a mode's column assignment, sending that mode back to
// column selection. Row results for the mode are kept; a later re-assignment
// rescans them under the override-preserving rules.
func (s *Session) ClearAssignment(mode Mode) {
	delete(s.Assignments, mode)
}

// Row returns the row with the given id.
func (s *Session) Row(id string) (*ParsedRow, error) {
	for _, row := range s.Rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRowNotFound, id)
}

// AddWarning records a non-fatal notice on the session.
func (s *Session) AddWarning(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// statusFor classifies an operator-supplied value against the current
// dictionary: matched when it equals a known value case-insensitively, new
// when non-empty, unknown when empty. Price values are re-parsed instead.
func (s *Session) statusFor(mode Mode, value string) Status {
	if strings.TrimSpace(value) == "" {
		return StatusUnknown
	}
	switch mode {
	case ModeSize:
		if s.Dict != nil && s.Dict.HasSizeLabel(value) {
			return StatusMatched
		}
	case ModeName:
		if s.Dict != nil && s.Dict.HasProductName(value) {
			return StatusMatched
		}
	case ModePrice:
		if MatchPrice(value).Status == StatusMatched {
			return StatusMatched
		}
	}
	return StatusNew
}
