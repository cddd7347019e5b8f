package cleaning

// Export materializes the session's extracted values back onto copies of the
// original rows, one assigned column at a time. Rows and columns never
// touched (mode skipped, or no non-empty extraction) pass through unchanged,
// so the output keeps the exact column structure of the upload.
func (s *Session) Export() []map[string]string {
	out := make([]map[string]string, len(s.Rows))
	for i, row := range s.Rows {
		data := make(map[string]string, len(row.OriginalData))
		for k, v := range row.OriginalData {
			data[k] = v
		}
		for mode, column := range s.Assignments {
			res, ok := row.Results[mode]
			if !ok || res.ExtractedValue == "" {
				continue
			}
			data[column] = res.ExtractedValue
		}
		out[i] = data
	}
	return out
}

// ExportSheet returns the cleaned rows in the full SheetData shape, safe to
// hand to any downstream consumer.
func (s *Session) ExportSheet() SheetData {
	return SheetData{
		Headers: append([]string(nil), s.Sheet.Headers...),
		Rows:    s.Export(),
	}
}
