package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tieubaoca/paperdesk-be/types"
)

// MetadataService asks the model for the six structured fields of a paper.
// The JSON contract is enforced only by prompt wording, so the response is
// fence-stripped, decoded and validated; on failure one corrective
// follow-up prompt is sent before the request fails.
type MetadataService struct {
	ai          AIService
	maxAttempts int
}

var requiredMetadataFields = []string{"title", "authors", "abstract", "tags", "file_url", "paper_id"}

func NewMetadataService(ai AIService, maxAttempts int) *MetadataService {
	if maxAttempts <= 0 {
		maxAttempts = 2
	}
	return &MetadataService{
		ai:          ai,
		maxAttempts: maxAttempts,
	}
}

// Extract derives PaperMetadata from paper text. The caller truncates the
// text to its prompt budget before calling; nothing is truncated here.
func (s *MetadataService) Extract(ctx context.Context, text string) (*types.PaperMetadata, error) {
	prompt := buildMetadataPrompt(text)

	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		raw, err := s.ai.Chat(ctx, prompt)
		if err != nil {
			// Provider failures are terminal, only malformed
			// responses get the corrective retry.
			return nil, err
		}

		metadata, err := parseMetadataResponse(raw)
		if err == nil {
			if metadata.PaperID == "" {
				metadata.PaperID = uuid.NewString()
			}
			return metadata, nil
		}
		lastErr = err
		prompt = buildCorrectivePrompt(raw, err)
	}
	return nil, lastErr
}

func buildMetadataPrompt(text string) string {
	return fmt.Sprintf(`Analyze this research paper text and extract the following information in JSON format:

1. title: The paper's title
2. authors: List of author names
3. abstract: The abstract or summary (2-3 sentences if no abstract found)
4. tags: 3-5 relevant topic tags/keywords
5. file_url: URL where the paper is hosted (if mentioned, else empty string)
6. paper_id: A unique identifier for the paper (e.g., DOI or arXiv ID; empty string if not found)

Paper text:
%s

Respond ONLY with a single valid JSON object in this exact format, no prose, no code fences:
{
"title": "Paper Title Here",
"authors": ["Author 1", "Author 2"],
"abstract": "Abstract text here...",
"tags": ["tag1", "tag2", "tag3"],
"file_url": "URL here or empty string",
"paper_id": "unique-paper-id-here"
}`, text)
}

func buildCorrectivePrompt(raw string, parseErr error) string {
	return fmt.Sprintf(`Your previous response could not be parsed: %v

Previous response:
%s

Respond again with ONLY a single valid JSON object containing exactly these keys: title, authors, abstract, tags, file_url, paper_id. No prose, no code fences.`, parseErr, raw)
}

func parseMetadataResponse(raw string) (*types.PaperMetadata, error) {
	cleaned := stripCodeFence(raw)

	// Decode into a key map first so a missing field is distinguishable
	// from a zero value.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, &types.ExtractionError{
			Msg: "model response is not valid JSON",
			Raw: raw,
			Err: err,
		}
	}
	for _, key := range requiredMetadataFields {
		if _, ok := fields[key]; !ok {
			return nil, &types.ExtractionError{
				Msg: fmt.Sprintf("model response is missing required field %q", key),
				Raw: raw,
			}
		}
	}

	var metadata types.PaperMetadata
	if err := json.Unmarshal([]byte(cleaned), &metadata); err != nil {
		return nil, &types.ExtractionError{
			Msg: "model response has wrong field types",
			Raw: raw,
			Err: err,
		}
	}
	return &metadata, nil
}

// stripCodeFence removes a Markdown code fence wrapper, with or without a
// language tag, leaving unfenced responses untouched.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	// drop the language tag on the opening fence line
	if idx := strings.Index(trimmed, "\n"); idx != -1 {
		firstLine := strings.TrimSpace(trimmed[:idx])
		if firstLine != "" && !strings.HasPrefix(firstLine, "{") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
