package service

import (
	"context"

	"github.com/tieubaoca/paperdesk-be/types"
)

// AIService is the text-generation capability. Both implementations are
// single-turn: the caller builds the full prompt, conversation history is
// not kept.
type AIService interface {
	Chat(ctx context.Context, prompt string) (string, error)
	ChatStream(ctx context.Context, prompt string, handler types.StreamHandler) error
}
