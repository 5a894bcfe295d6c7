package fiber

type ViewSummaryResponse struct {
	ID     string `json:"id" example:"co2-by-make"`
	Label  string `json:"label" example:"CO2 Emission by Make"`
	Output string `json:"output" example:"series"`
	Chart  string `json:"chart" example:"bar"`
}

type ViewListResponse struct {
	Views []ViewSummaryResponse `json:"views"`
}

type SeriesPointResponse struct {
	Label string            `json:"label" example:"FORD"`
	Key   map[string]string `json:"key,omitempty"`
	Value float64           `json:"value" example:"276.5"`
}

type SeriesResponse struct {
	Name   string                `json:"name" example:"CO2EMISSIONS"`
	Points []SeriesPointResponse `json:"points"`
}

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TableResponse struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type ViewResponse struct {
	ID     string           `json:"id" example:"co2-by-make"`
	Title  string           `json:"title" example:"Top 5 Makes by CO2 Emission"`
	Kind   string           `json:"kind" example:"series"`
	Chart  string           `json:"chart" example:"bar"`
	XLabel string           `json:"x_label,omitempty"`
	YLabel string           `json:"y_label,omitempty"`
	Series []SeriesResponse `json:"series,omitempty"`
	Points []PointResponse  `json:"points,omitempty"`
	Tables []TableResponse  `json:"tables,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"schema_error"`
	Message string `json:"message" example:"field CO2EMISSIONS: column not found"`
}
