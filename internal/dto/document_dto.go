package dto

import "coverquote-be/pkg/store"

type UploadResponse struct {
	SessionID  string             `json:"session_id"`
	Extraction *store.Extraction  `json:"extracted_data"`
	FakeQuotes map[string]float64 `json:"fake_quotes"`
	Summary    string             `json:"auto_summary"`
}

// DocumentExtractedEvent is published after a successful upload so listeners
// can react without blocking the request.
type DocumentExtractedEvent struct {
	SessionID    string `json:"session_id"`
	Jurisdiction string `json:"jurisdiction"`
}
