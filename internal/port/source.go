package port

import (
	"context"

	"docqa/internal/domain"
)

// DocumentSource loads the raw document collection for an analysis.
type DocumentSource interface {
	Load(ctx context.Context) ([]domain.Document, error)
}
