package conversations

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Laevateinn0131/callguard/internal/domain/ai"
)

// ErrEmptyTranscript rejects an analysis with nothing to analyze.
var ErrEmptyTranscript = errors.New("transcript is required")

// Service analyzes free-text call transcripts through the AI port. Unlike
// number checks there is no rule-table baseline, so a missing AI client is a
// hard error here.
type Service struct {
	AI     ai.Client
	Logger *zap.Logger
}

// Analyze returns the model's scam verdict for one transcript.
func (s *Service) Analyze(ctx context.Context, transcript string) (*ai.ConversationInsight, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}
	if s.AI == nil {
		return nil, ai.ErrNotConfigured
	}
	insight, err := s.AI.AnalyzeConversation(ctx, transcript)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("conversation analysis failed", zap.Error(err))
		}
		return nil, err
	}
	return insight, nil
}
