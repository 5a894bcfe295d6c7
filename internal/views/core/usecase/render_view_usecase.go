package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	dataset "emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/views/core/domain"
)

var ErrUnknownView = errors.New("unknown view")

type RenderViewInput struct {
	ViewID string
}

type RenderViewUseCase struct {
	registry *domain.Registry
	dataset  *dataset.Dataset
}

func NewRenderViewUseCase(registry *domain.Registry, ds *dataset.Dataset) *RenderViewUseCase {
	return &RenderViewUseCase{registry: registry, dataset: ds}
}

// ListViews returns the navigation entries in display order.
func (uc *RenderViewUseCase) ListViews() []domain.ViewSpec {
	return uc.registry.All()
}

// Execute looks up the view and runs it against the shared dataset.
// A schema error only fails this view; callers render it inline.
func (uc *RenderViewUseCase) Execute(ctx context.Context, in RenderViewInput) (*domain.ViewResult, error) {
	spec, ok := uc.registry.Lookup(in.ViewID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, in.ViewID)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := Run(spec, uc.dataset)
	if err != nil {
		log.Printf("view %s failed: %v", spec.ID, err)
		return nil, err
	}

	return res, nil
}
