package domain

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/uuid"
)

// Dataset is the in-memory vehicle table. It is built once at startup and
// never mutated afterwards, so it can be shared by concurrent readers.
type Dataset struct {
	id       string
	source   string
	loadedAt time.Time
	frame    dataframe.DataFrame
}

// FromTable builds a Dataset from a header row and string cells, the shape
// every file source produces. Required columns are typed and validated; any
// extra column is kept, numeric when all of its non-empty cells parse as floats.
func FromTable(source string, header []string, rows [][]string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, loadErr(source, "missing header row")
	}

	names := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeColumnName(h)
		if name == "" {
			return nil, loadErr(source, "column %d has an empty name", i+1)
		}
		if _, dup := index[name]; dup {
			return nil, loadErr(source, "duplicate column %s", name)
		}
		names[i] = name
		index[name] = i
	}

	for _, rc := range requiredColumns {
		if _, ok := index[rc.Name]; !ok {
			return nil, loadErr(source, "missing required column %s", rc.Name)
		}
	}

	cells := make([][]string, len(names))
	for i := range cells {
		cells[i] = make([]string, 0, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(names) {
			return nil, loadErr(source, "row %d: expected %d fields, got %d", r+1, len(names), len(row))
		}
		for c, v := range row {
			cells[c] = append(cells[c], strings.TrimSpace(v))
		}
	}

	cols := make([]series.Series, 0, len(names))
	for _, rc := range requiredColumns {
		s, err := typedSeries(source, rc, cells[index[rc.Name]])
		if err != nil {
			return nil, err
		}
		cols = append(cols, s)
	}
	for i, name := range names {
		if isRequired(name) {
			continue
		}
		cols = append(cols, inferSeries(name, cells[i]))
	}

	return newDataset(source, cols)
}

// FromRecords builds a Dataset holding exactly the required columns.
func FromRecords(source string, records []VehicleRecord) (*Dataset, error) {
	var (
		makes    = make([]string, len(records))
		models   = make([]string, len(records))
		classes  = make([]string, len(records))
		cyls     = make([]int, len(records))
		fuels    = make([]string, len(records))
		city     = make([]float64, len(records))
		hwy      = make([]float64, len(records))
		combMPG  = make([]float64, len(records))
		emission = make([]float64, len(records))
	)

	for i, r := range records {
		if r.Cylinders <= 0 {
			return nil, loadErr(source, "row %d: %s must be positive, got %d", i+1, ColCylinders, r.Cylinders)
		}
		for _, f := range []struct {
			name string
			v    float64
		}{
			{ColFuelConsumptionCity, r.FuelConsumptionCity},
			{ColFuelConsumptionHwy, r.FuelConsumptionHwy},
			{ColFuelConsumptionCombMPG, r.FuelConsumptionCombMPG},
			{ColCO2Emissions, r.CO2Emissions},
		} {
			if err := checkMeasure(source, i+1, f.name, f.v); err != nil {
				return nil, err
			}
		}

		makes[i] = r.Make
		models[i] = r.Model
		classes[i] = r.VehicleClass
		cyls[i] = r.Cylinders
		fuels[i] = r.FuelType
		city[i] = r.FuelConsumptionCity
		hwy[i] = r.FuelConsumptionHwy
		combMPG[i] = r.FuelConsumptionCombMPG
		emission[i] = r.CO2Emissions
	}

	return newDataset(source, []series.Series{
		series.New(makes, series.String, ColMake),
		series.New(models, series.String, ColModel),
		series.New(classes, series.String, ColVehicleClass),
		series.New(cyls, series.Int, ColCylinders),
		series.New(fuels, series.String, ColFuelType),
		series.New(city, series.Float, ColFuelConsumptionCity),
		series.New(hwy, series.Float, ColFuelConsumptionHwy),
		series.New(combMPG, series.Float, ColFuelConsumptionCombMPG),
		series.New(emission, series.Float, ColCO2Emissions),
	})
}

func newDataset(source string, cols []series.Series) (*Dataset, error) {
	frame := dataframe.New(cols...)
	if frame.Err != nil {
		return nil, &DataLoadError{Source: source, Err: frame.Err}
	}
	return &Dataset{
		id:       uuid.NewString(),
		source:   source,
		loadedAt: time.Now().UTC(),
		frame:    frame,
	}, nil
}

func (d *Dataset) ID() string          { return d.id }
func (d *Dataset) Source() string      { return d.source }
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
func (d *Dataset) Len() int            { return d.frame.Nrow() }

// Columns lists the dataset columns in storage order.
func (d *Dataset) Columns() []ColumnInfo {
	names := d.frame.Names()
	out := make([]ColumnInfo, len(names))
	for i, name := range names {
		out[i] = ColumnInfo{Name: name, Numeric: isNumeric(d.frame.Col(name))}
	}
	return out
}

// Records returns a copy of the rows as typed records.
func (d *Dataset) Records() []VehicleRecord {
	n := d.Len()
	makes := d.frame.Col(ColMake).Records()
	models := d.frame.Col(ColModel).Records()
	classes := d.frame.Col(ColVehicleClass).Records()
	cyls := d.frame.Col(ColCylinders).Float()
	fuels := d.frame.Col(ColFuelType).Records()
	city := d.frame.Col(ColFuelConsumptionCity).Float()
	hwy := d.frame.Col(ColFuelConsumptionHwy).Float()
	combMPG := d.frame.Col(ColFuelConsumptionCombMPG).Float()
	emission := d.frame.Col(ColCO2Emissions).Float()

	out := make([]VehicleRecord, n)
	for i := 0; i < n; i++ {
		out[i] = VehicleRecord{
			Make:                   makes[i],
			Model:                  models[i],
			VehicleClass:           classes[i],
			Cylinders:              int(cyls[i]),
			FuelType:               fuels[i],
			FuelConsumptionCity:    city[i],
			FuelConsumptionHwy:     hwy[i],
			FuelConsumptionCombMPG: combMPG[i],
			CO2Emissions:           emission[i],
		}
	}
	return out
}

func (d *Dataset) hasColumn(name string) bool {
	return slices.Contains(d.frame.Names(), name)
}

// numericColumn returns the values of a numeric column.
func (d *Dataset) numericColumn(name string) ([]float64, error) {
	if !d.hasColumn(name) {
		return nil, missingField(name)
	}
	s := d.frame.Col(name)
	if !isNumeric(s) {
		return nil, nonNumericField(name)
	}
	return s.Float(), nil
}

// textColumn renders every cell of a column as display text.
func (d *Dataset) textColumn(name string) ([]string, error) {
	if !d.hasColumn(name) {
		return nil, missingField(name)
	}
	s := d.frame.Col(name)
	if !isNumeric(s) {
		return s.Records(), nil
	}
	vals := s.Float()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = formatNumber(v)
	}
	return out, nil
}

func isNumeric(s series.Series) bool {
	return s.Type() == series.Int || s.Type() == series.Float
}

func isRequired(name string) bool {
	for _, rc := range requiredColumns {
		if rc.Name == name {
			return true
		}
	}
	return false
}

func normalizeColumnName(h string) string {
	return strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func typedSeries(source string, rc requiredColumn, cells []string) (series.Series, error) {
	switch rc.Kind {
	case kindInt:
		vals := make([]int, len(cells))
		for i, c := range cells {
			v, err := parseCount(c)
			if err != nil {
				return series.Series{}, loadErr(source, "row %d: %s: %v", i+1, rc.Name, err)
			}
			if v <= 0 {
				return series.Series{}, loadErr(source, "row %d: %s must be positive, got %d", i+1, rc.Name, v)
			}
			vals[i] = v
		}
		return series.New(vals, series.Int, rc.Name), nil
	case kindFloat:
		vals := make([]float64, len(cells))
		for i, c := range cells {
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return series.Series{}, loadErr(source, "row %d: %s: invalid number %q", i+1, rc.Name, c)
			}
			if err := checkMeasure(source, i+1, rc.Name, v); err != nil {
				return series.Series{}, err
			}
			vals[i] = v
		}
		return series.New(vals, series.Float, rc.Name), nil
	default:
		return series.New(cells, series.String, rc.Name), nil
	}
}

// inferSeries types an extra column as Float when every non-empty cell parses;
// empty cells become NaN. Columns with no values at all stay text.
func inferSeries(name string, cells []string) series.Series {
	vals := make([]float64, len(cells))
	seen := false
	for i, c := range cells {
		if c == "" {
			vals[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return series.New(cells, series.String, name)
		}
		vals[i] = v
		seen = true
	}
	if !seen {
		return series.New(cells, series.String, name)
	}
	return series.New(vals, series.Float, name)
}

func parseCount(c string) (int, error) {
	if v, err := strconv.Atoi(c); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(c, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

func checkMeasure(source string, row int, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return loadErr(source, "row %d: %s is not a finite number", row, name)
	}
	if v < 0 {
		return loadErr(source, "row %d: %s must be non-negative, got %v", row, name, v)
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
