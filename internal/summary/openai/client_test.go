package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"boxscore-service/internal/summary"
	"boxscore-service/internal/testutil"
)

type fakeCompleter struct {
	lastReq openai.ChatCompletionRequest
	resp    openai.ChatCompletionResponse
	err     error
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func TestSummarizeSendsPromptAndReturnsText(t *testing.T) {
	fake := &fakeCompleter{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "A tidy double-digit night."}},
			},
		},
	}
	c := &Client{api: fake, model: "test-model"}

	text, err := c.Summarize(context.Background(), testutil.SampleState())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "A tidy double-digit night." {
		t.Fatalf("unexpected text %q", text)
	}

	if fake.lastReq.Model != "test-model" {
		t.Fatalf("unexpected model %q", fake.lastReq.Model)
	}
	if len(fake.lastReq.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(fake.lastReq.Messages))
	}
	if fake.lastReq.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("expected system message first, got %q", fake.lastReq.Messages[0].Role)
	}
	if !strings.Contains(fake.lastReq.Messages[1].Content, "Jane Doe") {
		t.Fatalf("user prompt missing game state:\n%s", fake.lastReq.Messages[1].Content)
	}
}

func TestSummarizeRejectsEmptyResponse(t *testing.T) {
	c := &Client{api: &fakeCompleter{}, model: "test-model"}

	if _, err := c.Summarize(context.Background(), testutil.SampleState()); err == nil {
		t.Fatalf("expected error for response without choices")
	}
}

func TestSummarizeMapsRateLimits(t *testing.T) {
	fake := &fakeCompleter{
		err: &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "slow down"},
	}
	c := &Client{api: fake, model: "test-model"}

	_, err := c.Summarize(context.Background(), testutil.SampleState())
	rl, ok := summary.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.StatusCode != http.StatusTooManyRequests || rl.Message != "slow down" {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestSummarizeWrapsOtherErrors(t *testing.T) {
	wantErr := errors.New("connection refused")
	c := &Client{api: &fakeCompleter{err: wantErr}, model: "test-model"}

	_, err := c.Summarize(context.Background(), testutil.SampleState())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
	if _, ok := summary.AsRateLimitError(err); ok {
		t.Fatalf("transport errors must not map to rate limits")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"})
	if c.model != openai.GPT4oMini {
		t.Fatalf("expected default model, got %q", c.model)
	}
	if c.api == nil {
		t.Fatalf("expected API client to be constructed")
	}
}
