package services

import (
	"context"
	"fmt"

	"github.com/reqlens/reqlens/internal/domain/entities"
	"github.com/reqlens/reqlens/internal/domain/ports"
)

// AnalysisService drives one analysis round trip: build the prompt, call
// the selected provider, normalize the answer, reconcile it into a valid
// result. Stateless; nothing outlives a call.
type AnalysisService struct {
	completer ports.ChatCompleter
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(completer ports.ChatCompleter) *AnalysisService {
	return &AnalysisService{completer: completer}
}

// Analyze runs the full structured analysis against the named provider.
// Provider and transport failures are returned as-is; a malformed model
// answer is not a failure and is absorbed by reconciliation.
func (s *AnalysisService) Analyze(ctx context.Context, provider string, inputText string) (*entities.AnalysisResult, error) {
	messages := BuildPrompt(ModeFull, inputText)

	answer, err := s.completer.Complete(ctx, provider, messages)
	if err != nil {
		return nil, fmt.Errorf("completing analysis: %w", err)
	}

	return Reconcile(StripCodeFence(answer), inputText), nil
}

// ExtractConstraints runs the simple bullet-extraction mode and returns
// the constraints in answer order.
func (s *AnalysisService) ExtractConstraints(ctx context.Context, provider string, inputText string) ([]entities.Constraint, error) {
	messages := BuildPrompt(ModeSimple, inputText)

	answer, err := s.completer.Complete(ctx, provider, messages)
	if err != nil {
		return nil, fmt.Errorf("completing extraction: %w", err)
	}

	result := reconcileBullets(StripCodeFence(answer), inputText)
	return result.Constraints, nil
}
