package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/dataset/core/ports"
)

type LoadDatasetUseCase struct {
	source ports.DatasetSourcePort
}

func NewLoadDatasetUseCase(source ports.DatasetSourcePort) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{source: source}
}

// Execute loads the dataset. Every failure comes back as a *domain.DataLoadError
// so callers can treat it as startup-fatal with errors.Is(err, domain.ErrDataLoad).
func (uc *LoadDatasetUseCase) Execute(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()

	ds, err := uc.source.Load(ctx)
	if err != nil {
		var loadErr *domain.DataLoadError
		if errors.As(err, &loadErr) {
			return nil, err
		}
		return nil, &domain.DataLoadError{Source: uc.source.Describe(), Err: err}
	}
	if ds == nil {
		return nil, &domain.DataLoadError{Source: uc.source.Describe(), Err: errors.New("source returned no dataset")}
	}

	log.Printf("dataset %s loaded from %s: %d rows, %d columns in %v",
		ds.ID(), ds.Source(), ds.Len(), len(ds.Columns()), time.Since(start))

	return ds, nil
}

// DatasetInfo is a read-only summary of the loaded dataset.
type DatasetInfo struct {
	ID       string
	Source   string
	Rows     int
	Columns  []domain.ColumnInfo
	LoadedAt time.Time
}

// DescribeDatasetUseCase reports metadata about the dataset held in memory.
type DescribeDatasetUseCase struct {
	dataset *domain.Dataset
}

func NewDescribeDatasetUseCase(ds *domain.Dataset) *DescribeDatasetUseCase {
	return &DescribeDatasetUseCase{dataset: ds}
}

func (uc *DescribeDatasetUseCase) Execute(ctx context.Context) (*DatasetInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &DatasetInfo{
		ID:       uc.dataset.ID(),
		Source:   uc.dataset.Source(),
		Rows:     uc.dataset.Len(),
		Columns:  uc.dataset.Columns(),
		LoadedAt: uc.dataset.LoadedAt(),
	}, nil
}
