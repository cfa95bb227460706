package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/content"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/domain"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/retrieval"
)

// Completer is the narrow surface the service needs from the completion
// API, so tests can swap in a deterministic double.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Answer sources.
const (
	SourceGreeting  = "greeting"
	SourceNoResults = "no-results"
	SourceLLM       = "llm"
)

// AskService answers website questions: greeting short-circuit, keyword
// retrieval over the loaded records, then completion over the composed
// context.
type AskService struct {
	store        *content.Store
	completer    Completer
	contextLimit int
}

// NewAskService creates an ask service. A non-positive contextLimit falls
// back to the retrieval default.
func NewAskService(store *content.Store, completer Completer, contextLimit int) *AskService {
	if contextLimit <= 0 {
		contextLimit = retrieval.DefaultContextLimit
	}
	return &AskService{
		store:        store,
		completer:    completer,
		contextLimit: contextLimit,
	}
}

// AskResult carries the answer plus where it came from, for logging.
type AskResult struct {
	Answer  string
	Source  string
	Matched int
}

// Ask runs the full pipeline for one question. The caller validates that
// question is non-blank; a blank question here returns ErrEmptyQuestion.
// Completion failures come back wrapped in ErrCompletionUnavailable.
func (s *AskService) Ask(ctx context.Context, question string) (*AskResult, error) {
	logger := NewLogger(ctx)
	recordAsk()

	q := strings.TrimSpace(question)
	if q == "" {
		return nil, domain.ErrEmptyQuestion
	}

	if isGreeting(q) {
		recordGreeting()
		logger.LogInfof("ask", "greeting short-circuit question=%q", q)
		return &AskResult{Answer: GreetingAnswer, Source: SourceGreeting}, nil
	}

	matches := retrieval.Match(s.store.Records(), q)
	if len(matches) == 0 {
		recordNoResults()
		logger.LogInfof("ask", "no matching records question=%q", q)
		return &AskResult{Answer: NoResultsAnswer, Source: SourceNoResults}, nil
	}

	contextBlock := retrieval.Compose(matches, s.contextLimit)
	userPrompt := fmt.Sprintf("Website excerpts:\n%s\n\nQuestion:\n%s", contextBlock, q)

	start := time.Now()
	answer, err := s.completer.Complete(ctx, systemPrompt, userPrompt)
	recordCompletion(time.Since(start), err)
	if err != nil {
		logger.LogError("completion", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCompletionUnavailable, err)
	}

	if answer == "" {
		logger.LogWarnf("completion", "empty completion, using fallback question=%q", q)
		answer = FallbackAnswer
	}

	logger.LogInfof("ask", "answered question=%q matched=%d", q, len(matches))
	return &AskResult{Answer: answer, Source: SourceLLM, Matched: len(matches)}, nil
}

func isGreeting(q string) bool {
	s := strings.ToLower(strings.TrimSpace(q))
	for _, g := range greetings {
		if strings.Contains(s, g) {
			return true
		}
	}
	return false
}
