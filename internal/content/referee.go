package content

import (
	"context"

	"github.com/karandv/lingua/internal/wordchain"
)

// AIReferee judges word-chain plays through the content service. It is
// the default referee whenever an LLM provider is configured.
type AIReferee struct {
	svc *Service
}

func NewAIReferee(svc *Service) *AIReferee {
	return &AIReferee{svc: svc}
}

func (r *AIReferee) Judge(ctx context.Context, history []string, candidate string) (wordchain.Verdict, error) {
	return r.svc.WordChainVerdict(ctx, history, candidate)
}
