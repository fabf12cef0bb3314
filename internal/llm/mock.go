package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockTranscription is a canned result for the MockTranscriber.
type MockTranscription struct {
	Text       string
	Confidence *float64
	Err        error
}

// MockCall records one Transcribe invocation.
type MockCall struct {
	Audio []byte
	Mime  string
}

// MockTranscriber is a deterministic Transcriber for testing. It returns
// canned transcriptions in FIFO order and records all calls, so tests can
// assert that the pass-through path performs zero external calls.
type MockTranscriber struct {
	mu      sync.Mutex
	results []MockTranscription
	Calls   []MockCall
}

// NewMockTranscriber creates a MockTranscriber with the given canned results.
func NewMockTranscriber(results ...MockTranscription) *MockTranscriber {
	return &MockTranscriber{results: results}
}

// Transcribe returns the next canned result or ErrProviderUnavailable if
// the queue is empty.
func (m *MockTranscriber) Transcribe(_ context.Context, audio []byte, mime string) (*TranscriptionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Audio: audio, Mime: mime})

	if len(m.results) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	res := m.results[0]
	m.results = m.results[1:]

	if res.Err != nil {
		return nil, res.Err
	}

	return &TranscriptionResult{Text: res.Text, Confidence: res.Confidence}, nil
}

// ModelID returns "mock".
func (m *MockTranscriber) ModelID() string {
	return "mock"
}

// CallCount returns the number of Transcribe calls made.
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
