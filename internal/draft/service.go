package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/stoik/scribe/internal/models"
	"github.com/stoik/scribe/internal/provider"
)

// Service composes email drafts through a generative-text provider. It holds
// no mutable state; every request is independent.
type Service struct {
	generator provider.Generator
}

// NewService creates a draft service backed by the given generator.
func NewService(g provider.Generator) *Service {
	return &Service{generator: g}
}

// Compose validates the request, prompts the provider once and splits the
// generated text into subject and body. Validation failures never reach the
// provider.
func (s *Service) Compose(ctx context.Context, req models.DraftRequest) (models.DraftResult, error) {
	if req.UserRole == "" || req.RecipientRole == "" || req.Tone == "" || req.Details == "" {
		return models.DraftResult{}, newValidationError()
	}

	prompt := BuildPrompt(req)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return models.DraftResult{}, fmt.Errorf("failed to generate draft: %w", err)
	}

	subject, body, err := SplitEmail(text)
	if err != nil {
		return models.DraftResult{}, err
	}

	return models.DraftResult{
		EmailText: strings.TrimSpace(text),
		EmailComponents: models.EmailComponents{
			Subject: subject,
			Body:    body,
		},
	}, nil
}
