package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPExtractor calls a remote extraction service that accepts raw document
// bytes and returns {"text": "..."}. Both the fast extractor and the OCR
// service expose this shape.
type HTTPExtractor struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPExtractor(endpoint string) *HTTPExtractor {
	return &HTTPExtractor{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 300 * time.Second},
	}
}

type extractResponse struct {
	Text string `json:"text"`
}

func (e *HTTPExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", e.Endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed extractResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	return parsed.Text, nil
}

var _ TextExtractor = (*HTTPExtractor)(nil)
