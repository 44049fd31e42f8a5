package domain

import "io"

// UploadResult reports a bulk spreadsheet import: rows accepted as new
// candidates versus rows rejected (missing both required fields, or
// unreadable).
type UploadResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

type SpreadsheetUsecase interface {
	// ImportCandidates reads the first sheet of an .xlsx/.xls workbook,
	// first row as headers, and creates one candidate per usable row.
	ImportCandidates(r io.Reader) (*UploadResult, error)
	// ExportCandidates renders the (filtered) candidate list as an .xlsx
	// workbook and returns the bytes plus a download filename.
	ExportCandidates(filter CandidateFilter) ([]byte, string, error)
}
