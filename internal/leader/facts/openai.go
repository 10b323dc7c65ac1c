// AngelaMos | 2026
// openai.go

package facts

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ussr-leaders/backend/internal/config"
)

const systemPrompt = `Ты историк, специализирующийся на советском периоде.
Отвечай только проверяемыми фактами, по одному факту на строку, без нумерации
и без вводных фраз.`

// chatClient is the slice of the OpenAI client the generator uses.
type chatClient interface {
	CreateChatCompletion(
		ctx context.Context,
		req openai.ChatCompletionRequest,
	) (openai.ChatCompletionResponse, error)
}

// OpenAI generates facts through the chat completions API. Each call is
// bounded by the configured timeout and retried once on failure before
// the error is surfaced to the caller.
type OpenAI struct {
	client    chatClient
	model     string
	maxTokens int
	timeout   time.Duration
}

func NewOpenAI(cfg config.OpenAIConfig) *OpenAI {
	return &OpenAI{
		client:    openai.NewClient(cfg.APIKey),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
}

func (g *OpenAI) Generate(ctx context.Context, l Leader, count int) ([]string, error) {
	if count <= 0 {
		count = 5
	}

	req := openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: g.buildPrompt(l, count)},
		},
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		facts, err := g.complete(ctx, req, count)
		if err == nil {
			return facts, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("generate facts: %w", lastErr)
}

func (g *OpenAI) complete(
	ctx context.Context,
	req openai.ChatCompletionRequest,
	count int,
) ([]string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(callCtx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	facts := parseFacts(resp.Choices[0].Message.Content, count)
	if len(facts) == 0 {
		return nil, fmt.Errorf("no facts in completion response")
	}
	return facts, nil
}

func (g *OpenAI) buildPrompt(l Leader, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Назови %d интересных и малоизвестных фактов о личности: %s (%s).\n",
		count, l.NameRu, l.NameEn)
	fmt.Fprintf(&b, "Должность: %s. Год рождения: %d.", l.Position, l.BirthYear)
	if l.DeathYear != nil {
		fmt.Fprintf(&b, " Год смерти: %d.", *l.DeathYear)
	}
	return b.String()
}

// parseFacts splits the completion into one fact per line, stripping
// list markers the model sometimes adds despite the system prompt.
func parseFacts(content string, limit int) []string {
	lines := strings.Split(content, "\n")
	facts := make([]string, 0, limit)

	for _, line := range lines {
		fact := strings.TrimSpace(line)
		fact = strings.TrimLeft(fact, "0123456789.-•*) ")
		if fact == "" {
			continue
		}
		facts = append(facts, fact)
		if len(facts) == limit {
			break
		}
	}
	return facts
}
