package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ppiankov/namescreen/internal/model"
)

// NERClient talks to an external named-entity recognizer over HTTP, e.g. a
// spaCy service. The contract: POST {"text": ...} returns
// {"entities": [{"text": ..., "label": ..., "start": ...}]}.
type NERClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewNERClient creates a client; an empty endpoint means no recognizer is
// configured and the NER stage reports unavailable.
func NewNERClient(endpoint string, timeout time.Duration) *NERClient {
	if endpoint == "" {
		return nil
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &NERClient{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type nerRequest struct {
	Text string `json:"text"`
}

type nerResponse struct {
	Entities []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
		Start int    `json:"start"`
	} `json:"entities"`
}

// Recognize returns the person-entity spans in the text
func (c *NERClient) Recognize(ctx context.Context, text string) ([]model.Candidate, error) {
	body, err := json.Marshal(nerRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call recognizer: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("recognizer error (%d): %s", resp.StatusCode, string(respBody))
	}

	var parsed nerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode recognizer response: %w", err)
	}

	var candidates []model.Candidate
	for _, ent := range parsed.Entities {
		// Person category only; the recognizer also tags orgs and places
		if !strings.EqualFold(ent.Label, "PERSON") && !strings.EqualFold(ent.Label, "PER") {
			continue
		}
		candidates = append(candidates, model.Candidate{
			Text:     ent.Text,
			Method:   model.MethodStructuredParser,
			Position: ent.Start,
		})
	}

	return candidates, nil
}

// NERStrategy is the structured-extraction stage of the cascade
type NERStrategy struct {
	client *NERClient
}

// NewNERStrategy wraps a client; client may be nil (stage unavailable)
func NewNERStrategy(client *NERClient) *NERStrategy {
	return &NERStrategy{client: client}
}

// Name returns the strategy name
func (s *NERStrategy) Name() string {
	return "structured-parser"
}

// Extract runs the recognizer, reporting unavailable on any client failure
func (s *NERStrategy) Extract(ctx context.Context, articleText string) Outcome {
	if s.client == nil {
		return unavailable(fmt.Errorf("no recognizer endpoint configured"))
	}

	candidates, err := s.client.Recognize(ctx, articleText)
	if err != nil {
		return unavailable(err)
	}
	return found(candidates)
}
