package usecase

import (
	"cmp"
	"fmt"
	"slices"

	dataset "emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/views/core/domain"
)

// Run interprets spec against ds and returns a render-ready result.
// It is a pure function of its inputs; schema problems come back as
// *dataset.SchemaError.
func Run(spec domain.ViewSpec, ds *dataset.Dataset) (*domain.ViewResult, error) {
	res := &domain.ViewResult{
		ViewID: spec.ID,
		Title:  spec.Title,
		Kind:   spec.Output,
		Chart:  spec.Chart,
		XLabel: spec.XLabel,
		YLabel: spec.YLabel,
	}

	switch spec.Output {
	case domain.OutputSeries:
		series, err := runSeries(spec, ds)
		if err != nil {
			return nil, err
		}
		res.Series = series

	case domain.OutputScatter:
		points, err := ds.Pairs(spec.Fields[0], spec.Fields[1])
		if err != nil {
			return nil, err
		}
		res.Points = points

	case domain.OutputTable:
		for _, ex := range spec.Extremes {
			t, err := ds.Extremes(ex.Field, ex.Kind, spec.Columns)
			if err != nil {
				return nil, err
			}
			res.Tables = append(res.Tables, domain.Table{
				Title:   ex.Title,
				Columns: t.Columns,
				Rows:    t.Rows,
			})
		}

	default:
		return nil, fmt.Errorf("view %s: unknown output kind %q", spec.ID, spec.Output)
	}

	return res, nil
}

func runSeries(spec domain.ViewSpec, ds *dataset.Dataset) ([]domain.Series, error) {
	agg, err := ds.Aggregate(dataset.Query{
		GroupBy: spec.GroupBy,
		Fields:  spec.Fields,
		Kind:    spec.Kind,
		Where:   spec.Where,
	})
	if err != nil {
		return nil, err
	}

	groups := slices.Clone(agg.Groups)
	orderGroups(groups, spec.Order, spec.OrderField)
	if spec.Limit > 0 && len(groups) > spec.Limit {
		groups = groups[:spec.Limit]
	}

	series := make([]domain.Series, len(spec.Fields))
	for i, field := range spec.Fields {
		points := make([]domain.SeriesPoint, 0, len(groups))
		for _, g := range groups {
			points = append(points, domain.SeriesPoint{
				Label: pointLabel(g.Key, spec.LabelBy),
				Key:   keyMap(g.Key),
				Value: g.Values[i],
			})
		}
		series[i] = domain.Series{Name: field, Points: points}
	}
	return series, nil
}

// orderGroups sorts in place. Groups arrive key-ascending, and value ties
// fall back to that order.
func orderGroups(groups []dataset.Group, order domain.Ordering, field int) {
	switch order {
	case domain.OrderValueDesc:
		slices.SortStableFunc(groups, func(a, b dataset.Group) int {
			if c := cmp.Compare(b.Values[field], a.Values[field]); c != 0 {
				return c
			}
			return dataset.CompareKeys(a.Key, b.Key)
		})
	case domain.OrderValueAsc:
		slices.SortStableFunc(groups, func(a, b dataset.Group) int {
			if c := cmp.Compare(a.Values[field], b.Values[field]); c != 0 {
				return c
			}
			return dataset.CompareKeys(a.Key, b.Key)
		})
	case domain.OrderKeyAsc:
		slices.SortStableFunc(groups, func(a, b dataset.Group) int {
			return dataset.CompareKeys(a.Key, b.Key)
		})
	}
}

func pointLabel(key dataset.GroupKey, labelBy string) string {
	if labelBy != "" {
		if p, ok := key.Part(labelBy); ok {
			return p.Text
		}
	}
	if len(key) == 0 {
		return "All"
	}
	return key.String()
}

func keyMap(key dataset.GroupKey) map[string]string {
	m := make(map[string]string, len(key))
	for _, p := range key {
		m[p.Column] = p.Text
	}
	return m
}
