package domain

import (
	"fmt"
	"slices"

	dataset "emissions-dashboard-service/internal/dataset/core/domain"
)

const (
	ViewCO2ByMake         = "co2-by-make"
	ViewCO2MiniCompact    = "co2-minicompact"
	ViewFuelVsCO2         = "fuel-vs-co2"
	ViewCO2ByCylinders    = "co2-by-cylinders"
	ViewCO2ByFuelType     = "co2-by-fuel-type"
	ViewCO2MaxMin         = "co2-max-min"
	ViewFuelCityHwyByMake = "fuel-city-hwy-by-make"
	ViewTopModelsByCO2    = "top5-models-co2"
)

const MiniCompactVehicleClass = "MINICOMPACT"

// DefaultViews returns the dashboard's eight views in navigation order.
func DefaultViews() []ViewSpec {
	return []ViewSpec{
		{
			ID:      ViewCO2ByMake,
			Label:   "CO2 Emission by Make",
			Title:   "Top 5 Makes by CO2 Emission",
			Output:  OutputSeries,
			GroupBy: []string{dataset.ColMake},
			Fields:  []string{dataset.ColCO2Emissions},
			Kind:    dataset.AggMean,
			Order:   OrderValueDesc,
			Limit:   5,
			Chart:   "bar",
			XLabel:  "Make",
			YLabel:  "CO2 Emission",
		},
		{
			ID:      ViewCO2MiniCompact,
			Label:   "CO2 Emission for MiniCompact Cars",
			Title:   "CO2 Emission for MiniCompact Cars",
			Output:  OutputSeries,
			GroupBy: []string{dataset.ColMake, dataset.ColVehicleClass},
			Fields:  []string{dataset.ColCO2Emissions},
			Kind:    dataset.AggMean,
			Where:   []dataset.Predicate{{Column: dataset.ColVehicleClass, Equals: MiniCompactVehicleClass}},
			Order:   OrderValueDesc,
			LabelBy: dataset.ColMake,
			Chart:   "bar",
			XLabel:  "Make",
			YLabel:  "CO2 Emission",
		},
		{
			ID:     ViewFuelVsCO2,
			Label:  "Fuel Consumption vs CO2 Emission",
			Title:  "Fuel Consumption vs CO2 Emission",
			Output: OutputScatter,
			Fields: []string{dataset.ColFuelConsumptionCombMPG, dataset.ColCO2Emissions},
			Order:  OrderNone,
			Chart:  "scatter",
			XLabel: "Fuel Consumption (MPG)",
			YLabel: "CO2 Emission",
		},
		{
			ID:      ViewCO2ByCylinders,
			Label:   "CO2 Emission by Number of Cylinders",
			Title:   "CO2 Emission by Number of Cylinders",
			Output:  OutputSeries,
			GroupBy: []string{dataset.ColCylinders},
			Fields:  []string{dataset.ColCO2Emissions},
			Kind:    dataset.AggMean,
			Order:   OrderKeyAsc,
			Chart:   "scatter",
			XLabel:  "Number of Cylinders",
			YLabel:  "CO2 Emission",
		},
		{
			ID:      ViewCO2ByFuelType,
			Label:   "CO2 Emission by Fuel Type",
			Title:   "CO2 Emission by Fuel Type",
			Output:  OutputSeries,
			GroupBy: []string{dataset.ColFuelType},
			Fields:  []string{dataset.ColCO2Emissions},
			Kind:    dataset.AggMean,
			Order:   OrderNone,
			Chart:   "bar",
			XLabel:  "Fuel Type",
			YLabel:  "CO2 Emission",
		},
		{
			ID:     ViewCO2MaxMin,
			Label:  "Maximum and Minimum CO2 Emission",
			Title:  "Maximum and Minimum CO2 Emission",
			Output: OutputTable,
			Extremes: []Extreme{
				{Kind: dataset.AggMax, Field: dataset.ColCO2Emissions, Title: "Car with Maximum CO2 Emission"},
				{Kind: dataset.AggMin, Field: dataset.ColCO2Emissions, Title: "Car with Minimum CO2 Emission"},
			},
			Columns: []string{dataset.ColMake, dataset.ColModel, dataset.ColCO2Emissions},
			Order:   OrderNone,
			Chart:   "table",
		},
		{
			ID:         ViewFuelCityHwyByMake,
			Label:      "Fuel Consumption by Make (City vs Highway)",
			Title:      "Fuel Consumption (City vs Highway)",
			Output:     OutputSeries,
			GroupBy:    []string{dataset.ColMake},
			Fields:     []string{dataset.ColFuelConsumptionCity, dataset.ColFuelConsumptionHwy},
			Kind:       dataset.AggMean,
			Order:      OrderValueDesc,
			OrderField: 1,
			Limit:      5,
			Chart:      "line",
			XLabel:     "Make",
			YLabel:     "Fuel Consumption",
		},
		{
			ID:      ViewTopModelsByCO2,
			Label:   "Top 5 Models with Highest CO2 Emission",
			Title:   "Top 5 Models with Highest CO2 Emission",
			Output:  OutputSeries,
			GroupBy: []string{dataset.ColModel},
			Fields:  []string{dataset.ColCO2Emissions},
			Kind:    dataset.AggMean,
			Order:   OrderValueDesc,
			Limit:   5,
			Chart:   "table",
			XLabel:  "Model",
			YLabel:  "CO2 Emission",
		},
	}
}

// Registry maps view ids to specs and keeps navigation order.
type Registry struct {
	order []string
	specs map[string]ViewSpec
}

// NewRegistry validates specs and indexes them by id.
func NewRegistry(specs []ViewSpec) (*Registry, error) {
	r := &Registry{specs: make(map[string]ViewSpec, len(specs))}
	for _, s := range specs {
		if err := validateSpec(s); err != nil {
			return nil, err
		}
		if _, dup := r.specs[s.ID]; dup {
			return nil, fmt.Errorf("view %s: duplicate id", s.ID)
		}
		r.specs[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r, nil
}

func (r *Registry) Lookup(id string) (ViewSpec, bool) {
	s, ok := r.specs[id]
	return s, ok
}

// All returns the specs in navigation order.
func (r *Registry) All() []ViewSpec {
	out := make([]ViewSpec, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.specs[id])
	}
	return out
}

func validateSpec(s ViewSpec) error {
	if s.ID == "" {
		return fmt.Errorf("view with label %q: empty id", s.Label)
	}
	if s.Limit < 0 {
		return fmt.Errorf("view %s: negative limit", s.ID)
	}
	switch s.Output {
	case OutputSeries:
		if len(s.Fields) == 0 {
			return fmt.Errorf("view %s: series output needs at least one field", s.ID)
		}
		if !s.Kind.Valid() {
			return fmt.Errorf("view %s: unknown aggregation %q", s.ID, s.Kind)
		}
	case OutputScatter:
		if len(s.Fields) != 2 {
			return fmt.Errorf("view %s: scatter output needs exactly two fields", s.ID)
		}
	case OutputTable:
		if len(s.Extremes) == 0 || len(s.Columns) == 0 {
			return fmt.Errorf("view %s: table output needs extremes and columns", s.ID)
		}
	default:
		return fmt.Errorf("view %s: unknown output kind %q", s.ID, s.Output)
	}
	if s.LabelBy != "" && !slices.Contains(s.GroupBy, s.LabelBy) {
		return fmt.Errorf("view %s: label column %s is not a grouping column", s.ID, s.LabelBy)
	}
	switch s.Order {
	case "", OrderNone, OrderKeyAsc:
	case OrderValueDesc, OrderValueAsc:
		if s.OrderField < 0 || s.OrderField >= len(s.Fields) {
			return fmt.Errorf("view %s: order field %d out of range", s.ID, s.OrderField)
		}
	default:
		return fmt.Errorf("view %s: unknown ordering %q", s.ID, s.Order)
	}
	return nil
}
