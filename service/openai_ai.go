package service

import (
	"context"
	"errors"
	"io"

	"github.com/sashabaranov/go-openai"
	"github.com/tieubaoca/paperdesk-be/types"
)

var systemMessageResearchAssistant = openai.ChatCompletionMessage{
	Role:    openai.ChatMessageRoleSystem,
	Content: "You are a research assistant. You read academic papers and answer precisely about their content.",
}

type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // also works against local OpenAI-compatible servers
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client: client,
		model:  model,
	}
}

func (s *OpenAIService) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Messages: []openai.ChatCompletionMessage{
				systemMessageResearchAssistant,
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Model: s.model,
		},
	)
	if err != nil {
		return "", &types.LLMCallError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &types.LLMCallError{Err: errors.New("no response generated")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAIService) ChatStream(ctx context.Context, prompt string, handler types.StreamHandler) error {
	stream, err := s.client.CreateChatCompletionStream(
		ctx,
		openai.ChatCompletionRequest{
			Messages: []openai.ChatCompletionMessage{
				systemMessageResearchAssistant,
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Model: s.model,
		},
	)
	if err != nil {
		return &types.LLMCallError{Err: err}
	}
	defer stream.Close()
	for {
		resp, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &types.LLMCallError{Err: err}
		}
		if len(resp.Choices) == 0 {
			continue
		}
		handler(resp.Choices[0].Delta.Content)
	}
}
