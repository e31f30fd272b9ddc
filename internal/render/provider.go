package render

import (
	"context"

	"github.com/promoforge/adgen-backend/internal/models"
)

// Provider produces one rendered video for a fully merged render document.
// Terminal provider failure is reported as an error, distinct from a
// render that is still in progress.
type Provider interface {
	Render(ctx context.Context, doc models.RenderDocument) (string, error)
}
