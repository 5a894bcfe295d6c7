package usecase_test

import (
	"context"
	"errors"
	"testing"

	dataset "emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/views/core/domain"
	"emissions-dashboard-service/internal/views/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func car(mk, model, class string, cyl int, fuel string, city, hwy, mpg, co2 float64) dataset.VehicleRecord {
	return dataset.VehicleRecord{
		Make:                   mk,
		Model:                  model,
		VehicleClass:           class,
		Cylinders:              cyl,
		FuelType:               fuel,
		FuelConsumptionCity:    city,
		FuelConsumptionHwy:     hwy,
		FuelConsumptionCombMPG: mpg,
		CO2Emissions:           co2,
	}
}

func fixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRecords("test", []dataset.VehicleRecord{
		car("FORD", "FOCUS", "COMPACT", 4, "X", 8.4, 6.0, 39, 168),
		car("FORD", "MUSTANG", "SUBCOMPACT", 8, "X", 14.6, 9.6, 23, 285),
		car("FIAT", "500", "MINICOMPACT", 4, "X", 8.3, 6.4, 38, 170),
		car("MINI", "COOPER", "MINICOMPACT", 4, "Z", 7.8, 6.0, 40, 161),
		car("MINI", "COOPER S", "MINICOMPACT", 4, "Z", 8.7, 6.6, 37, 177),
		car("BENTLEY", "CONTINENTAL GT", "SUBCOMPACT", 12, "Z", 22.7, 12.8, 16, 419),
		car("TOYOTA", "PRIUS", "MID-SIZE", 4, "X", 4.4, 4.6, 63, 104),
		car("ACURA", "MDX", "SUV - SMALL", 6, "Z", 12.7, 9.1, 25, 255),
		car("PORSCHE", "911", "MINICOMPACT", 6, "Z", 11.3, 7.9, 29, 225),
	})
	require.NoError(t, err)
	return ds
}

func newUseCase(t *testing.T, ds *dataset.Dataset) *usecase.RenderViewUseCase {
	t.Helper()
	r, err := domain.NewRegistry(domain.DefaultViews())
	require.NoError(t, err)
	return usecase.NewRenderViewUseCase(r, ds)
}

func render(t *testing.T, uc *usecase.RenderViewUseCase, id string) *domain.ViewResult {
	t.Helper()
	res, err := uc.Execute(context.Background(), usecase.RenderViewInput{ViewID: id})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, id, res.ViewID)
	return res
}

func labelsOf(s domain.Series) []string {
	out := make([]string, 0, len(s.Points))
	for _, p := range s.Points {
		out = append(out, p.Label)
	}
	return out
}

func valuesOf(s domain.Series) []float64 {
	out := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		out = append(out, p.Value)
	}
	return out
}

// ------------------------------------------------------------
// The eight dashboard views
// ------------------------------------------------------------

func TestRender_CO2ByMake_TopFive(t *testing.T) {
	res := render(t, newUseCase(t, fixture(t)), domain.ViewCO2ByMake)

	require.Len(t, res.Series, 1)
	s := res.Series[0]
	assert.Equal(t, dataset.ColCO2Emissions, s.Name)
	assert.Equal(t, []string{"BENTLEY", "ACURA", "FORD", "PORSCHE", "FIAT"}, labelsOf(s))
	assert.Equal(t, []float64{419, 255, 226.5, 225, 170}, valuesOf(s))
	assert.Equal(t, "bar", res.Chart)
}

func TestRender_MiniCompact(t *testing.T) {
	res := render(t, newUseCase(t, fixture(t)), domain.ViewCO2MiniCompact)

	s := res.Series[0]
	assert.Equal(t, []string{"PORSCHE", "FIAT", "MINI"}, labelsOf(s))
	assert.Equal(t, []float64{225, 170, 169}, valuesOf(s))
	for _, p := range s.Points {
		assert.Equal(t, domain.MiniCompactVehicleClass, p.Key[dataset.ColVehicleClass])
		assert.Equal(t, p.Label, p.Key[dataset.ColMake])
	}
}

func TestRender_FuelVsCO2(t *testing.T) {
	res := render(t, newUseCase(t, fixture(t)), domain.ViewFuelVsCO2)

	assert.Equal(t, domain.OutputScatter, res.Kind)
	require.Len(t, res.Points, 9)
	assert.Equal(t, dataset.Point{X: 39, Y: 168}, res.Points[0])
	assert.Empty(t, res.Series)
}

func TestRender_CO2ByCylinders_NumericKeyOrder(t *testing.T) {
	res := render(t, newUseCase(t, fixture(t)), domain.ViewCO2ByCylinders)

	s := res.Series[0]
	assert.Equal(t, []string{"4", "6", "8", "12"}, labelsOf(s))
	assert.Equal(t, []float64{156, 240, 285, 419}, valuesOf(s))
}

func TestRender_CO2ByFuelType(t *testing.T) {
	res := render(t, newUseCase(t, fixture(t)), domain.ViewCO2ByFuelType)

	s := res.Series[0]
	assert.Equal(t, []string{"X", "Z"}, labelsOf(s))
	assert.InDelta(t, 181.75, s.Points[0].Value, 1e-9)
	assert.InDelta(t, 247.4, s.Points[1].Value, 1e-9)
}

func TestRender_MaxMin(t *testing.T) {
	res := render(t, newUseCase(t, fixture(t)), domain.ViewCO2MaxMin)

	require.Len(t, res.Tables, 2)
	assert.Equal(t, []string{dataset.ColMake, dataset.ColModel, dataset.ColCO2Emissions}, res.Tables[0].Columns)
	assert.Equal(t, [][]string{{"BENTLEY", "CONTINENTAL GT", "419"}}, res.Tables[0].Rows)
	assert.Equal(t, [][]string{{"TOYOTA", "PRIUS", "104"}}, res.Tables[1].Rows)
	assert.Equal(t, "Car with Maximum CO2 Emission", res.Tables[0].Title)
}

func TestRender_FuelCityHwy_OrderedByHighway(t *testing.T) {
	res := render(t, newUseCase(t, fixture(t)), domain.ViewFuelCityHwyByMake)

	require.Len(t, res.Series, 2)
	city, hwy := res.Series[0], res.Series[1]
	assert.Equal(t, dataset.ColFuelConsumptionCity, city.Name)
	assert.Equal(t, dataset.ColFuelConsumptionHwy, hwy.Name)

	want := []string{"BENTLEY", "ACURA", "PORSCHE", "FORD", "FIAT"}
	assert.Equal(t, want, labelsOf(hwy))
	assert.Equal(t, want, labelsOf(city))
	assert.InDelta(t, 7.8, hwy.Points[3].Value, 1e-9)
	assert.InDelta(t, 11.5, city.Points[3].Value, 1e-9)
}

func TestRender_TopModels(t *testing.T) {
	res := render(t, newUseCase(t, fixture(t)), domain.ViewTopModelsByCO2)

	s := res.Series[0]
	require.Len(t, s.Points, 5)
	assert.Equal(t, []string{"CONTINENTAL GT", "MUSTANG", "MDX", "911", "COOPER S"}, labelsOf(s))
	for i := 1; i < len(s.Points); i++ {
		assert.GreaterOrEqual(t, s.Points[i-1].Value, s.Points[i].Value)
	}
}

// ------------------------------------------------------------
// Edge cases
// ------------------------------------------------------------

func TestRender_EmptyDatasetGivesEmptyViews(t *testing.T) {
	ds, err := dataset.FromRecords("empty", nil)
	require.NoError(t, err)
	uc := newUseCase(t, ds)

	for _, v := range uc.ListViews() {
		res := render(t, uc, v.ID)
		assert.True(t, res.IsEmpty(), "view %s", v.ID)
	}
}

func TestRender_FewerGroupsThanLimit(t *testing.T) {
	ds, err := dataset.FromRecords("small", []dataset.VehicleRecord{
		car("A", "m1", "COMPACT", 4, "X", 1, 1, 30, 100),
		car("B", "m2", "COMPACT", 4, "X", 1, 1, 30, 200),
	})
	require.NoError(t, err)

	res := render(t, newUseCase(t, ds), domain.ViewCO2ByMake)
	assert.Equal(t, []string{"B", "A"}, labelsOf(res.Series[0]))
}

func TestRender_ValueTiesFallBackToKeyOrder(t *testing.T) {
	ds, err := dataset.FromRecords("ties", []dataset.VehicleRecord{
		car("C", "m1", "COMPACT", 4, "X", 1, 1, 30, 100),
		car("A", "m2", "COMPACT", 4, "X", 1, 1, 30, 100),
		car("B", "m3", "COMPACT", 4, "X", 1, 1, 30, 200),
	})
	require.NoError(t, err)

	res := render(t, newUseCase(t, ds), domain.ViewCO2ByMake)
	assert.Equal(t, []string{"B", "A", "C"}, labelsOf(res.Series[0]))
}

func TestExecute_UnknownView(t *testing.T) {
	_, err := newUseCase(t, fixture(t)).Execute(context.Background(), usecase.RenderViewInput{ViewID: "nope"})
	assert.ErrorIs(t, err, usecase.ErrUnknownView)
}

func TestExecute_SchemaErrorFailsOnlyThatView(t *testing.T) {
	views := append(domain.DefaultViews(), domain.ViewSpec{
		ID:      "engine-size",
		Label:   "Engine size by make",
		Output:  domain.OutputSeries,
		GroupBy: []string{dataset.ColMake},
		Fields:  []string{"ENGINESIZE"},
		Kind:    dataset.AggMean,
	})
	r, err := domain.NewRegistry(views)
	require.NoError(t, err)
	uc := usecase.NewRenderViewUseCase(r, fixture(t))

	_, err = uc.Execute(context.Background(), usecase.RenderViewInput{ViewID: "engine-size"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrSchema))

	render(t, uc, domain.ViewCO2ByMake)
}

func TestExecute_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newUseCase(t, fixture(t)).Execute(ctx, usecase.RenderViewInput{ViewID: domain.ViewCO2ByMake})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_IsRepeatable(t *testing.T) {
	ds := fixture(t)
	for _, spec := range domain.DefaultViews() {
		first, err := usecase.Run(spec, ds)
		require.NoError(t, err)
		second, err := usecase.Run(spec, ds)
		require.NoError(t, err)
		assert.Equal(t, first, second, "view %s", spec.ID)
	}
}
