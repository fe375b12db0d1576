package intelligence

import (
	"context"
	"strings"

	"github.com/alexanderramin/raiden/internal/llm"
)

// Fixed advisory replies. Every reply, fixed or generated, carries the
// ResponsePrefix.
const (
	ResponsePrefix  = "RAIDEN: "
	AwaitingQuery   = ResponsePrefix + "Awaiting query. API client not available if the advisory service is disabled."
	ProcessingQuery = ResponsePrefix + "Processing query..."
	QueryFailed     = ResponsePrefix + "Error processing query. System anomaly detected."
)

// AdvisoryService answers operator questions about the workbench and the
// TSUKUYOMI framework.
type AdvisoryService interface {
	// Query returns a prefixed reply. Model failures are folded into the
	// reply text; the error is returned alongside for logging.
	Query(ctx context.Context, text string) (string, error)
	// Available reports whether a model backend is configured and
	// answering.
	Available(ctx context.Context) bool
}

type advisoryService struct {
	client llm.LLMClient
}

// NewAdvisoryService creates an AdvisoryService. A nil client yields a
// service that always answers AwaitingQuery.
func NewAdvisoryService(client llm.LLMClient) AdvisoryService {
	return &advisoryService{client: client}
}

func (s *advisoryService) Query(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" || s.client == nil {
		return AwaitingQuery, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvisory,
		SystemPrompt: AdvisorySystemInstruction(),
		UserPrompt:   text,
	})
	if err != nil {
		return QueryFailed, err
	}
	return ResponsePrefix + resp.Text, nil
}

func (s *advisoryService) Available(ctx context.Context) bool {
	return s.client != nil && s.client.Available(ctx)
}

// StripPrefix removes the ResponsePrefix from a reply, for callers that
// present the bare answer.
func StripPrefix(reply string) string {
	return strings.TrimPrefix(reply, ResponsePrefix)
}
