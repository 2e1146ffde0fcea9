package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"studysage-be/pkg/assistant"
)

// RemoteProvider talks to the assistant service over HTTP.
type RemoteProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

// Ensure RemoteProvider implements Provider
var _ assistant.Provider = &RemoteProvider{}

func NewRemoteProvider(baseURL, modelName string, timeout time.Duration) *RemoteProvider {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &RemoteProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type askRequest struct {
	Question    string   `json:"question"`
	DocumentIDs []string `json:"document_ids,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature float64  `json:"temperature,omitempty"`
}

type askResponse struct {
	Answer  string                `json:"answer"`
	Sources []assistant.SourceRef `json:"sources"`
}

type generateRequest struct {
	DocumentID string `json:"document_id"`
	Model      string `json:"model,omitempty"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type flashcardsResponse struct {
	Flashcards []assistant.Flashcard `json:"flashcards"`
}

type mindmapResponse struct {
	Mindmap assistant.MindmapNode `json:"mindmap"`
}

func (p *RemoteProvider) resolveOptions(opts []assistant.Option) *assistant.Options {
	options := &assistant.Options{
		Temperature: 0.7,
		Model:       p.ModelName,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (p *RemoteProvider) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := p.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("assistant error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// --- Interface Implementation ---

func (p *RemoteProvider) Ask(ctx context.Context, question string, opts ...assistant.Option) (string, error) {
	options := p.resolveOptions(opts)

	var resp askResponse
	err := p.post(ctx, "/ai/ask", askRequest{
		Question:    question,
		Model:       options.Model,
		Temperature: options.Temperature,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func (p *RemoteProvider) AskWithContext(ctx context.Context, question string, documentIDs []string, opts ...assistant.Option) (*assistant.Answer, error) {
	options := p.resolveOptions(opts)

	var resp askResponse
	err := p.post(ctx, "/ai/ask-with-context", askRequest{
		Question:    question,
		DocumentIDs: documentIDs,
		Model:       options.Model,
		Temperature: options.Temperature,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &assistant.Answer{
		Text:    resp.Answer,
		Sources: resp.Sources,
	}, nil
}

func (p *RemoteProvider) Summarize(ctx context.Context, documentID string, opts ...assistant.Option) (string, error) {
	options := p.resolveOptions(opts)

	var resp summaryResponse
	err := p.post(ctx, "/ai/summarize", generateRequest{
		DocumentID: documentID,
		Model:      options.Model,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (p *RemoteProvider) GenerateFlashcards(ctx context.Context, documentID string, opts ...assistant.Option) ([]assistant.Flashcard, error) {
	options := p.resolveOptions(opts)

	var resp flashcardsResponse
	err := p.post(ctx, "/ai/flashcards", generateRequest{
		DocumentID: documentID,
		Model:      options.Model,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Flashcards, nil
}

func (p *RemoteProvider) GenerateMindmap(ctx context.Context, documentID string, opts ...assistant.Option) (*assistant.MindmapNode, error) {
	options := p.resolveOptions(opts)

	var resp mindmapResponse
	err := p.post(ctx, "/ai/mindmap", generateRequest{
		DocumentID: documentID,
		Model:      options.Model,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Mindmap, nil
}
