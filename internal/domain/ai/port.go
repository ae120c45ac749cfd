package ai

import "context"

// Client is the enrichment port. Implementations call a generative-language
// API and return best-effort parsed insights; a transport or auth failure is
// the caller's to degrade on.
type Client interface {
	AnalyzeNumber(ctx context.Context, req NumberRequest) (*NumberInsight, error)
	AnalyzeConversation(ctx context.Context, transcript string) (*ConversationInsight, error)
}

// NumberRequest embeds the already-computed base classification so the model
// can reason from it.
type NumberRequest struct {
	Number         string
	Normalized     string
	NumberType     string
	Area           string
	CallerType     string
	CallerCategory string
	Risk           string
}
