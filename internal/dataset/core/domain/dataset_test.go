package domain_test

import (
	"math"
	"testing"

	"emissions-dashboard-service/internal/dataset/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{
	"MAKE", "MODEL", "VEHICLECLASS", "CYLINDERS", "FUELTYPE",
	"FUELCONSUMPTION_CITY", "FUELCONSUMPTION_HWY", "FUELCONSUMPTION_COMB_MPG", "CO2EMISSIONS",
}

func row(cells ...string) []string { return cells }

func TestFromTable_TypesRequiredColumns(t *testing.T) {
	ds, err := domain.FromTable("mem", header, [][]string{
		row("FORD", "FOCUS", "COMPACT", "4", "X", "8.4", "6.0", "39", "168"),
		row("MINI", "COOPER", "MINICOMPACT", "4", "Z", "7.8", "6.0", "40", "161"),
	})
	require.NoError(t, err)

	assert.Equal(t, "mem", ds.Source())
	assert.NotEmpty(t, ds.ID())
	assert.False(t, ds.LoadedAt().IsZero())
	assert.Equal(t, 2, ds.Len())

	recs := ds.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "FORD", recs[0].Make)
	assert.Equal(t, 4, recs[0].Cylinders)
	assert.Equal(t, 168.0, recs[0].CO2Emissions)
	assert.Equal(t, 40.0, recs[1].FuelConsumptionCombMPG)
}

func TestFromTable_NormalizesHeaders(t *testing.T) {
	h := []string{
		"\ufeffmake", " Model ", "vehicleclass", "Cylinders", "fueltype",
		"fuelconsumption_city", "FUELCONSUMPTION_HWY", "fuelconsumption_comb_mpg", "co2emissions",
	}
	ds, err := domain.FromTable("mem", h, [][]string{
		row("FORD", "FOCUS", "COMPACT", "4", "X", "8.4", "6.0", "39", "168"),
	})
	require.NoError(t, err)

	names := make([]string, 0)
	for _, c := range ds.Columns() {
		names = append(names, c.Name)
	}
	assert.Equal(t, domain.RequiredColumns(), names)
}

func TestFromTable_KeepsExtraColumns(t *testing.T) {
	h := append([]string{"MODELYEAR", "TRANSMISSION"}, header...)
	ds, err := domain.FromTable("mem", h, [][]string{
		append(row("2014", "AS5"), "ACURA", "ILX", "COMPACT", "4", "Z", "9.9", "6.7", "33", "196"),
		append(row("", "M6"), "MINI", "COOPER", "MINICOMPACT", "4", "Z", "7.8", "6.0", "40", "161"),
	})
	require.NoError(t, err)

	cols := map[string]bool{}
	for _, c := range ds.Columns() {
		cols[c.Name] = c.Numeric
	}
	assert.True(t, cols["MODELYEAR"])
	assert.False(t, cols["TRANSMISSION"])
	assert.True(t, cols[domain.ColCylinders])
	assert.False(t, cols[domain.ColMake])

	agg, err := ds.Query(nil, "MODELYEAR", domain.AggMean)
	require.NoError(t, err)
	require.Equal(t, 1, agg.Len())
	assert.True(t, math.IsNaN(agg.Groups[0].Values[0]))
}

func TestFromTable_LoadErrors(t *testing.T) {
	good := row("FORD", "FOCUS", "COMPACT", "4", "X", "8.4", "6.0", "39", "168")

	tests := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"no header", nil, nil},
		{"missing column", header[:8], [][]string{good[:8]}},
		{"duplicate column", append(append([]string{}, header...), "make"), [][]string{append(append([]string{}, good...), "x")}},
		{"empty column name", append(append([]string{}, header...), " "), [][]string{append(append([]string{}, good...), "x")}},
		{"ragged row", header, [][]string{good[:5]}},
		{"non-numeric measure", header, [][]string{row("FORD", "FOCUS", "COMPACT", "4", "X", "8.4", "6.0", "39", "lots")}},
		{"negative measure", header, [][]string{row("FORD", "FOCUS", "COMPACT", "4", "X", "8.4", "6.0", "39", "-1")}},
		{"zero cylinders", header, [][]string{row("FORD", "FOCUS", "COMPACT", "0", "X", "8.4", "6.0", "39", "168")}},
		{"fractional cylinders", header, [][]string{row("FORD", "FOCUS", "COMPACT", "4.5", "X", "8.4", "6.0", "39", "168")}},
		{"infinite measure", header, [][]string{row("FORD", "FOCUS", "COMPACT", "4", "X", "Inf", "6.0", "39", "168")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.FromTable("mem", tt.header, tt.rows)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDataLoad)

			var loadErr *domain.DataLoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, "mem", loadErr.Source)
		})
	}
}

func TestFromTable_AcceptsWholeFloatCylinders(t *testing.T) {
	ds, err := domain.FromTable("mem", header, [][]string{
		row("FORD", "FOCUS", "COMPACT", "4.0", "X", "8.4", "6.0", "39", "168"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Records()[0].Cylinders)
}

func TestFromRecords_RejectsInvalidValues(t *testing.T) {
	_, err := domain.FromRecords("mem", []domain.VehicleRecord{
		vehicle("FORD", "FOCUS", "COMPACT", 0, "X", 8.4, 6.0, 39, 168),
	})
	assert.ErrorIs(t, err, domain.ErrDataLoad)

	_, err = domain.FromRecords("mem", []domain.VehicleRecord{
		vehicle("FORD", "FOCUS", "COMPACT", 4, "X", math.NaN(), 6.0, 39, 168),
	})
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}

func TestSchemaError_Message(t *testing.T) {
	ds := mustDataset(t, sampleRecords())

	_, err := ds.Query([]string{domain.ColMake}, "ENGINESIZE", domain.AggMean)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENGINESIZE")
	assert.NotErrorIs(t, err, domain.ErrDataLoad)
}
