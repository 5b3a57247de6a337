package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tieubaoca/paperdesk-be/repository"
	"github.com/tieubaoca/paperdesk-be/types"
)

// TextExtractor turns raw PDF bytes into plain text.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// MetadataExtractor turns paper text into the six structured fields.
type MetadataExtractor interface {
	Extract(ctx context.Context, text string) (*types.PaperMetadata, error)
}

// PaperService orchestrates the ingestion pipeline and the chat flow. All
// collaborators are injected so tests can substitute fakes.
type PaperService struct {
	repo           repository.PaperRepo
	storage        BlobStorage
	extractor      TextExtractor
	metadata       MetadataExtractor
	ai             AIService
	maxPromptChars int
}

const defaultMaxPromptChars = 8000

func NewPaperService(
	repo repository.PaperRepo,
	storage BlobStorage,
	extractor TextExtractor,
	metadata MetadataExtractor,
	ai AIService,
	maxPromptChars int,
) *PaperService {
	if maxPromptChars <= 0 {
		maxPromptChars = defaultMaxPromptChars
	}
	return &PaperService{
		repo:           repo,
		storage:        storage,
		extractor:      extractor,
		metadata:       metadata,
		ai:             ai,
		maxPromptChars: maxPromptChars,
	}
}

// Ingest runs upload validation, text extraction, metadata extraction and
// persistence, returning the freshly created record. Re-ingesting the same
// file creates a second independent record; there is no deduplication.
func (s *PaperService) Ingest(ctx context.Context, filename string, data []byte, userID string) (*types.Paper, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, &types.ValidationError{Msg: "no file selected"}
	}
	if userID == "" {
		userID = types.DefaultUserID
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		return nil, err
	}

	metadata, err := s.metadata.Extract(ctx, s.truncate(text))
	if err != nil {
		return nil, err
	}

	filePath, err := s.storage.Save(filename, data)
	if err != nil {
		return nil, err
	}

	paper := &types.Paper{
		UserID:        userID,
		Title:         metadata.Title,
		Authors:       metadata.Authors,
		Abstract:      metadata.Abstract,
		Tags:          metadata.Tags,
		FileURL:       metadata.FileURL,
		PaperID:       metadata.PaperID,
		FilePath:      filePath,
		ExtractedText: text,
	}
	created, err := s.repo.Insert(ctx, paper)
	if err != nil {
		// Keep storage consistent with the store: the blob is useless
		// without its record.
		s.storage.Delete(filePath)
		return nil, err
	}
	return created, nil
}

func (s *PaperService) List(ctx context.Context, userID string) ([]*types.Paper, error) {
	if userID == "" {
		userID = types.DefaultUserID
	}
	return s.repo.ListByUser(ctx, userID)
}

// SearchByTitle is the secondary, explicitly multi-result title lookup.
func (s *PaperService) SearchByTitle(ctx context.Context, title, userID string) ([]*types.Paper, error) {
	if userID == "" {
		userID = types.DefaultUserID
	}
	return s.repo.FindByTitle(ctx, title, userID)
}

func (s *PaperService) Get(ctx context.Context, id, userID string) (*types.Paper, error) {
	if userID == "" {
		userID = types.DefaultUserID
	}
	return s.repo.GetByID(ctx, id, userID)
}

// Delete removes the record with a single conditional delete, then removes
// the blob best-effort.
func (s *PaperService) Delete(ctx context.Context, id, userID string) error {
	if userID == "" {
		userID = types.DefaultUserID
	}
	paper, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id, userID); err != nil {
		return err
	}
	if paper.FilePath != "" {
		s.storage.Delete(paper.FilePath)
	}
	return nil
}

// File returns the stored PDF bytes together with the owning record.
func (s *PaperService) File(ctx context.Context, id, userID string) (*types.Paper, []byte, error) {
	paper, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.storage.Read(paper.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return paper, data, nil
}

// Chat answers a single question grounded on one stored paper. Each call
// is stateless; no conversation history is kept.
func (s *PaperService) Chat(ctx context.Context, id, question, userID string) (*types.ChatExchange, error) {
	prompt, paper, err := s.GroundingPrompt(ctx, id, question, userID)
	if err != nil {
		return nil, err
	}

	answer, err := s.ai.Chat(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &types.ChatExchange{
		Question:   question,
		Answer:     strings.TrimSpace(answer),
		PaperTitle: paper.Title,
	}, nil
}

// GroundingPrompt validates the question, loads the paper and builds the
// prompt that restricts the model to the paper's own content. Shared by
// the HTTP chat handler and the websocket stream.
func (s *PaperService) GroundingPrompt(ctx context.Context, id, question, userID string) (string, *types.Paper, error) {
	if strings.TrimSpace(question) == "" {
		return "", nil, &types.ValidationError{Msg: "question is required"}
	}

	paper, err := s.Get(ctx, id, userID)
	if err != nil {
		return "", nil, err
	}

	text, err := s.paperText(paper)
	if err != nil {
		return "", nil, err
	}

	prompt := fmt.Sprintf(`You are answering questions about the following research paper.

Title: %s

Abstract: %s

Paper content:
%s

Question: %s

Answer using only the paper content above. If the paper does not contain the answer, say so politely.`,
		paper.Title, paper.Abstract, s.truncate(text), question)

	return prompt, paper, nil
}

// paperText prefers the text cached at ingestion time and only falls back
// to re-downloading and re-parsing the blob for records written before the
// cache field existed.
func (s *PaperService) paperText(paper *types.Paper) (string, error) {
	if paper.ExtractedText != "" {
		return paper.ExtractedText, nil
	}
	data, err := s.storage.Read(paper.FilePath)
	if err != nil {
		return "", err
	}
	return s.extractor.ExtractText(data)
}

func (s *PaperService) truncate(text string) string {
	if len(text) > s.maxPromptChars {
		return text[:s.maxPromptChars]
	}
	return text
}
