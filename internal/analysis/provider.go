package analysis

import (
	"context"

	"github.com/promoforge/adgen-backend/internal/models"
)

// Provider runs video intelligence on a stored source video. A failed
// analysis returns an error; an analysis that completed with no
// annotations returns an empty result and no error.
type Provider interface {
	Analyze(ctx context.Context, videoURI string) (*models.AnalysisResult, error)
}
