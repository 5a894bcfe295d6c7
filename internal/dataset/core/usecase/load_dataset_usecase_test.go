package usecase_test

import (
	"context"
	"errors"
	"testing"

	"emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/dataset/core/usecase"
)

// fakeSource implements DatasetSourcePort for tests.
type fakeSource struct {
	LoadFn func(ctx context.Context) (*domain.Dataset, error)
	called bool
}

func (f *fakeSource) Load(ctx context.Context) (*domain.Dataset, error) {
	f.called = true
	if f.LoadFn != nil {
		return f.LoadFn(ctx)
	}
	return nil, nil
}

func (f *fakeSource) Describe() string { return "fake" }

func sampleDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := domain.FromRecords("fake", []domain.VehicleRecord{
		{Make: "FORD", Model: "FOCUS", VehicleClass: "COMPACT", Cylinders: 4, FuelType: "X",
			FuelConsumptionCity: 8.4, FuelConsumptionHwy: 6.0, FuelConsumptionCombMPG: 39, CO2Emissions: 168},
	})
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return ds
}

// ------------------------------------------------------------
// LOAD
// ------------------------------------------------------------

func TestLoadDataset_Success(t *testing.T) {
	want := sampleDataset(t)
	src := &fakeSource{
		LoadFn: func(ctx context.Context) (*domain.Dataset, error) {
			return want, nil
		},
	}

	got, err := usecase.NewLoadDatasetUseCase(src).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected the source's dataset to be returned")
	}
	if !src.called {
		t.Fatalf("expected Load to be called")
	}
}

func TestLoadDataset_KeepsDataLoadError(t *testing.T) {
	loadErr := &domain.DataLoadError{Source: "csv:x", Err: errors.New("boom")}
	src := &fakeSource{
		LoadFn: func(ctx context.Context) (*domain.Dataset, error) {
			return nil, loadErr
		},
	}

	_, err := usecase.NewLoadDatasetUseCase(src).Execute(context.Background())
	var got *domain.DataLoadError
	if !errors.As(err, &got) || got != loadErr {
		t.Fatalf("expected original DataLoadError, got %v", err)
	}
}

func TestLoadDataset_WrapsOtherErrors(t *testing.T) {
	src := &fakeSource{
		LoadFn: func(ctx context.Context) (*domain.Dataset, error) {
			return nil, context.DeadlineExceeded
		},
	}

	_, err := usecase.NewLoadDatasetUseCase(src).Execute(context.Background())
	if !errors.Is(err, domain.ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be kept, got %v", err)
	}
}

func TestLoadDataset_NilDataset(t *testing.T) {
	_, err := usecase.NewLoadDatasetUseCase(&fakeSource{}).Execute(context.Background())
	if !errors.Is(err, domain.ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad, got %v", err)
	}
}

// ------------------------------------------------------------
// DESCRIBE
// ------------------------------------------------------------

func TestDescribeDataset(t *testing.T) {
	ds := sampleDataset(t)

	info, err := usecase.NewDescribeDatasetUseCase(ds).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ID != ds.ID() || info.Rows != 1 || info.Source != "fake" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if len(info.Columns) != len(domain.RequiredColumns()) {
		t.Fatalf("expected %d columns, got %d", len(domain.RequiredColumns()), len(info.Columns))
	}
}

func TestDescribeDataset_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := usecase.NewDescribeDatasetUseCase(sampleDataset(t)).Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
