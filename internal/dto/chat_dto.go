package dto

import (
	"coverquote-be/pkg/decpage"
	"coverquote-be/pkg/store"
)

type SendChatRequest struct {
	Message string             `json:"message"`
	Profile *store.UserProfile `json:"profile,omitempty"`
}

type SendChatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

type ChatHistoryResponse struct {
	SessionID  string             `json:"session_id"`
	History    []store.Turn       `json:"chat_history"`
	Extraction *store.Extraction  `json:"extracted_data,omitempty"`
	FakeQuotes map[string]float64 `json:"fake_quotes,omitempty"`
}

type RetrieveRequest struct {
	Jurisdiction string   `query:"state"`
	Topic        string   `query:"topic"`
	K            int      `query:"k"`
	Line         string   `query:"line"`
	Coverage     string   `query:"coverage"`
	CoveragesAny []string `query:"coverages_any"`
	Section      string   `query:"section"`
	Query        string   `query:"q"`
}

type RetrieveResponse struct {
	Jurisdiction string           `json:"state"`
	Topic        string           `json:"topic"`
	K            int              `json:"k"`
	Chunks       []string         `json:"chunks"`
	Minimums     decpage.Minimums `json:"parsed_minimums"`
}

type JurisdictionDebugResponse struct {
	Jurisdiction string `json:"jurisdiction"`
	Trace        string `json:"trace"`
}
