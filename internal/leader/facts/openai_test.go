// AngelaMos | 2026
// openai_test.go

package facts

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockChatClient struct {
	responses []openai.ChatCompletionResponse
	errs      []error
	calls     int
}

func (m *mockChatClient) CreateChatCompletion(
	_ context.Context,
	_ openai.ChatCompletionRequest,
) (openai.ChatCompletionResponse, error) {
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return openai.ChatCompletionResponse{}, m.errs[i]
	}
	if i < len(m.responses) {
		return m.responses[i], nil
	}
	return openai.ChatCompletionResponse{}, errors.New("no scripted response")
}

func completionWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func newTestOpenAI(client chatClient) *OpenAI {
	return &OpenAI{
		client:    client,
		model:     "gpt-3.5-turbo",
		maxTokens: 256,
		timeout:   time.Second,
	}
}

func TestOpenAIGenerate(t *testing.T) {
	client := &mockChatClient{
		responses: []openai.ChatCompletionResponse{
			completionWith("Первый факт\nВторой факт\nТретий факт"),
		},
	}
	gen := newTestOpenAI(client)

	got, err := gen.Generate(context.Background(), Leader{
		NameRu:    "Тест",
		NameEn:    "Test",
		BirthYear: 1900,
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Первый факт", "Второй факт", "Третий факт"}, got)
	assert.Equal(t, 1, client.calls)
}

func TestOpenAIGenerateRetriesOnce(t *testing.T) {
	client := &mockChatClient{
		errs: []error{errors.New("transient"), nil},
		responses: []openai.ChatCompletionResponse{
			{},
			completionWith("Факт после повтора"),
		},
	}
	gen := newTestOpenAI(client)

	got, err := gen.Generate(context.Background(), Leader{NameRu: "Тест"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Факт после повтора"}, got)
	assert.Equal(t, 2, client.calls)
}

func TestOpenAIGenerateGivesUpAfterRetry(t *testing.T) {
	client := &mockChatClient{
		errs: []error{errors.New("down"), errors.New("still down")},
	}
	gen := newTestOpenAI(client)

	_, err := gen.Generate(context.Background(), Leader{NameRu: "Тест"}, 1)
	require.Error(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestOpenAIGenerateEmptyChoices(t *testing.T) {
	client := &mockChatClient{
		responses: []openai.ChatCompletionResponse{{}, {}},
	}
	gen := newTestOpenAI(client)

	_, err := gen.Generate(context.Background(), Leader{NameRu: "Тест"}, 1)
	assert.Error(t, err)
}
