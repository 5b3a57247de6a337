package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/tieubaoca/paperdesk-be/types"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiService rotates through a pool of API keys when the provider
// errors, which in practice means quota exhaustion on free-tier keys.
type GeminiService struct {
	apiKeys    []string
	currentKey int
	modelName  string
	client     *genai.Client
	model      *genai.GenerativeModel
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{
		apiKeys:    apiKeys,
		currentKey: 0,
		modelName:  modelName,
	}

	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	s.model = client.GenerativeModel(s.modelName)
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	return s.initClient()
}

func (s *GeminiService) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		// One retry on the next key before giving up.
		if err := s.rotateAPIKey(); err != nil {
			return "", &types.LLMCallError{Err: err}
		}
		resp, err = s.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", &types.LLMCallError{Err: err}
		}
	}

	if len(resp.Candidates) == 0 {
		return "", &types.LLMCallError{Err: errors.New("no response generated")}
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func (s *GeminiService) ChatStream(ctx context.Context, prompt string, handler types.StreamHandler) error {
	iter := s.model.GenerateContentStream(ctx, genai.Text(prompt))

	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if err := s.rotateAPIKey(); err != nil {
				return &types.LLMCallError{Err: err}
			}
			iter = s.model.GenerateContentStream(ctx, genai.Text(prompt))
			resp, err = iter.Next()
			if err != nil {
				return &types.LLMCallError{Err: err}
			}
		}

		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					handler(string(text))
				}
			}
		}
	}
	return nil
}
