package domain

import (
	dataset "emissions-dashboard-service/internal/dataset/core/domain"
)

type OutputKind string

const (
	OutputSeries  OutputKind = "series"  // categorical label -> value, one series per field
	OutputScatter OutputKind = "scatter" // row-level (x, y) pairs
	OutputTable   OutputKind = "table"   // raw record subsets
)

type Ordering string

const (
	OrderNone      Ordering = "none"
	OrderValueDesc Ordering = "value_desc"
	OrderValueAsc  Ordering = "value_asc"
	OrderKeyAsc    Ordering = "key_asc"
)

// ViewSpec declares one navigation entry. The executor interprets it; no view
// carries code of its own.
type ViewSpec struct {
	ID    string
	Label string // navigation text
	Title string // heading above the chart or table

	Output  OutputKind
	GroupBy []string
	Fields  []string // aggregated fields; for scatter, [x, y]
	Kind    dataset.AggKind
	Where   []dataset.Predicate

	Order      Ordering
	OrderField int    // index into Fields used by value orderings
	Limit      int    // 0 = no truncation
	LabelBy    string // key column used as point label; empty joins all key parts

	// Record subsets: one table per extreme kind, projected onto Columns.
	Extremes []Extreme
	Columns  []string

	// Presentation hints passed through to the renderer.
	Chart  string
	XLabel string
	YLabel string
}

type Extreme struct {
	Kind  dataset.AggKind
	Field string
	Title string
}

// ViewResult is the render-ready output of one view. Exactly one of Series,
// Points or Tables is populated according to Kind.
type ViewResult struct {
	ViewID string
	Title  string
	Kind   OutputKind
	Chart  string
	XLabel string
	YLabel string

	Series []Series
	Points []dataset.Point
	Tables []Table
}

type Series struct {
	Name   string
	Points []SeriesPoint
}

type SeriesPoint struct {
	Label string
	Key   map[string]string // group column -> value
	Value float64
}

type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// IsEmpty reports whether the result holds no data points or rows.
func (r *ViewResult) IsEmpty() bool {
	for _, s := range r.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	for _, t := range r.Tables {
		if len(t.Rows) > 0 {
			return false
		}
	}
	return len(r.Points) == 0
}
