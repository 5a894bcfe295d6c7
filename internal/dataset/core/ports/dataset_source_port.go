package ports

import (
	"context"

	"emissions-dashboard-service/internal/dataset/core/domain"
)

// DatasetSourcePort produces the vehicle table once at startup.
type DatasetSourcePort interface {
	Load(ctx context.Context) (*domain.Dataset, error)
	// Describe returns a human-readable name for logs and error messages.
	Describe() string
}
