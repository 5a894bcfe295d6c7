package domain

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type AggKind string

const (
	AggMean AggKind = "mean"
	AggMax  AggKind = "max"
	AggMin  AggKind = "min"
)

func (k AggKind) Valid() bool {
	switch k {
	case AggMean, AggMax, AggMin:
		return true
	}
	return false
}

// Predicate keeps rows whose column renders exactly as Equals.
// Numeric columns compare by value.
type Predicate struct {
	Column string
	Equals string
}

// Query describes one grouped aggregation. An empty GroupBy aggregates the
// whole (filtered) table into a single group.
type Query struct {
	GroupBy []string
	Fields  []string
	Kind    AggKind
	Where   []Predicate
}

// KeyPart is one component of a group key.
type KeyPart struct {
	Column  string
	Text    string
	Number  float64
	Numeric bool
}

type GroupKey []KeyPart

func (k GroupKey) String() string {
	parts := make([]string, len(k))
	for i, p := range k {
		parts[i] = p.Text
	}
	return strings.Join(parts, " / ")
}

// Part returns the key component for column.
func (k GroupKey) Part(column string) (KeyPart, bool) {
	for _, p := range k {
		if p.Column == column {
			return p, true
		}
	}
	return KeyPart{}, false
}

// CompareKeys orders keys part by part; numeric parts compare by value.
func CompareKeys(a, b GroupKey) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		var c int
		if a[i].Numeric && b[i].Numeric {
			c = cmp.Compare(a[i].Number, b[i].Number)
		} else {
			c = strings.Compare(a[i].Text, b[i].Text)
		}
		if c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Group is one output row of an aggregation. Values line up with Aggregation.Fields.
type Group struct {
	Key    GroupKey
	Count  int
	Values []float64
}

// Aggregation is an ordered mapping from group key to aggregated values,
// sorted by key ascending.
type Aggregation struct {
	GroupBy []string
	Fields  []string
	Kind    AggKind
	Groups  []Group
}

func (a *Aggregation) Len() int { return len(a.Groups) }

// Value looks up the first aggregated field of the group whose key renders as key.
func (a *Aggregation) Value(key string) (float64, bool) {
	for _, g := range a.Groups {
		if g.Key.String() == key {
			return g.Values[0], true
		}
	}
	return 0, false
}

// Query groups rows by groupBy and computes kind over field per group.
func (d *Dataset) Query(groupBy []string, field string, kind AggKind) (*Aggregation, error) {
	return d.Aggregate(Query{GroupBy: groupBy, Fields: []string{field}, Kind: kind})
}

// Aggregate runs q: filter, group, aggregate each field. It never mutates d.
func (d *Dataset) Aggregate(q Query) (*Aggregation, error) {
	if !q.Kind.Valid() {
		return nil, &SchemaError{Reason: "unknown aggregation " + strconv.Quote(string(q.Kind))}
	}
	if len(q.Fields) == 0 {
		return nil, &SchemaError{Reason: "no aggregate field given"}
	}

	for _, f := range q.Fields {
		if _, err := d.numericColumn(f); err != nil {
			return nil, err
		}
	}
	for _, col := range q.GroupBy {
		if !d.hasColumn(col) {
			return nil, missingField(col)
		}
	}

	sub, err := d.filter(q.Where)
	if err != nil {
		return nil, err
	}

	values := make([][]float64, len(q.Fields))
	for i, f := range q.Fields {
		values[i], _ = sub.numericColumn(f)
	}
	keys := make([]keyColumn, len(q.GroupBy))
	for i, col := range q.GroupBy {
		keys[i], _ = sub.keyColumn(col)
	}

	buckets := make(map[string][]int)
	var order []string
	for r := 0; r < sub.Len(); r++ {
		id := bucketID(keys, r)
		if _, ok := buckets[id]; !ok {
			order = append(order, id)
		}
		buckets[id] = append(buckets[id], r)
	}

	groups := make([]Group, 0, len(order))
	for _, id := range order {
		members := buckets[id]
		g := Group{
			Key:    groupKey(keys, members[0]),
			Count:  len(members),
			Values: make([]float64, len(q.Fields)),
		}
		for i := range q.Fields {
			g.Values[i] = reduce(q.Kind, pick(values[i], members))
		}
		groups = append(groups, g)
	}

	slices.SortFunc(groups, func(a, b Group) int { return CompareKeys(a.Key, b.Key) })

	return &Aggregation{
		GroupBy: slices.Clone(q.GroupBy),
		Fields:  slices.Clone(q.Fields),
		Kind:    q.Kind,
		Groups:  groups,
	}, nil
}

// Table is a projected subset of rows, rendered as display text.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Extremes returns every row whose field equals the dataset-wide max (or min),
// projected onto columns. Ties are all returned; NaN cells never match.
func (d *Dataset) Extremes(field string, kind AggKind, columns []string) (*Table, error) {
	if kind != AggMax && kind != AggMin {
		return nil, &SchemaError{Field: field, Reason: "extremes need max or min, got " + strconv.Quote(string(kind))}
	}
	vals, err := d.numericColumn(field)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, &SchemaError{Field: field, Reason: "extremes need at least one output column"}
	}
	var selected []string
	for _, c := range columns {
		if !d.hasColumn(c) {
			return nil, missingField(c)
		}
		if !slices.Contains(selected, c) {
			selected = append(selected, c)
		}
	}

	table := &Table{Columns: slices.Clone(columns), Rows: [][]string{}}
	target := reduce(kind, vals)
	if math.IsNaN(target) {
		return table, nil
	}

	frame := d.frame.Filter(dataframe.F{
		Colname:    field,
		Comparator: series.Eq,
		Comparando: target,
	}).Select(selected)
	if frame.Err != nil {
		return nil, fmt.Errorf("extremes of %s: %w", field, frame.Err)
	}

	hits := &Dataset{frame: frame}
	cells := make([][]string, len(columns))
	for i, c := range columns {
		cells[i], _ = hits.textColumn(c)
	}
	for r := 0; r < hits.Len(); r++ {
		row := make([]string, len(columns))
		for i := range columns {
			row[i] = cells[i][r]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

type Point struct {
	X float64
	Y float64
}

// Pairs returns the row-level (x, y) values in row order.
func (d *Dataset) Pairs(x, y string) ([]Point, error) {
	xs, err := d.numericColumn(x)
	if err != nil {
		return nil, err
	}
	ys, err := d.numericColumn(y)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(xs))
	for i := range xs {
		out[i] = Point{X: xs[i], Y: ys[i]}
	}
	return out, nil
}

type keyColumn struct {
	name    string
	text    []string
	numbers []float64
}

func (d *Dataset) keyColumn(name string) (keyColumn, error) {
	text, err := d.textColumn(name)
	if err != nil {
		return keyColumn{}, err
	}
	kc := keyColumn{name: name, text: text}
	if isNumeric(d.frame.Col(name)) {
		kc.numbers = d.frame.Col(name).Float()
	}
	return kc, nil
}

// filter returns a dataset holding the rows that match every predicate.
// Text columns compare with series.Eq; numeric columns compare by value.
func (d *Dataset) filter(where []Predicate) (*Dataset, error) {
	if len(where) == 0 {
		return d, nil
	}

	filters := make([]dataframe.F, 0, len(where))
	for _, p := range where {
		if !d.hasColumn(p.Column) {
			return nil, missingField(p.Column)
		}
		f := dataframe.F{Colname: p.Column, Comparator: series.Eq, Comparando: p.Equals}
		if isNumeric(d.frame.Col(p.Column)) {
			want, err := strconv.ParseFloat(p.Equals, 64)
			if err != nil {
				return nil, &SchemaError{Field: p.Column, Reason: "is numeric but filter value " + strconv.Quote(p.Equals) + " is not"}
			}
			f.Comparator = series.CompFunc
			f.Comparando = func(el series.Element) bool {
				return !el.IsNA() && el.Float() == want
			}
		}
		filters = append(filters, f)
	}

	frame := d.frame.FilterAggregation(dataframe.And, filters...)
	if frame.Err != nil {
		return nil, fmt.Errorf("filter rows: %w", frame.Err)
	}
	return &Dataset{id: d.id, source: d.source, loadedAt: d.loadedAt, frame: frame}, nil
}

func bucketID(keys []keyColumn, row int) string {
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(0)
		}
		b.WriteString(k.text[row])
	}
	return b.String()
}

func groupKey(keys []keyColumn, row int) GroupKey {
	key := make(GroupKey, len(keys))
	for i, k := range keys {
		p := KeyPart{Column: k.name, Text: k.text[row]}
		if k.numbers != nil {
			p.Number, p.Numeric = k.numbers[row], true
		}
		key[i] = p
	}
	return key
}

func pick(vals []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = vals[r]
	}
	return out
}

// reduce applies kind to the non-NaN values of xs. It returns NaN when none
// are left.
func reduce(kind AggKind, xs []float64) float64 {
	xs = dropNaN(xs)
	if len(xs) == 0 {
		return math.NaN()
	}
	switch kind {
	case AggMax:
		return floats.Max(xs)
	case AggMin:
		return floats.Min(xs)
	default:
		// sorted so the sum, and the mean, do not depend on row order
		slices.Sort(xs)
		return stat.Mean(xs, nil)
	}
}

// dropNaN returns a copy of xs without NaN values.
func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
