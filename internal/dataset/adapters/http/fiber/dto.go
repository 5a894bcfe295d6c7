package fiber

type ColumnResponse struct {
	Name    string `json:"name"`
	Numeric bool   `json:"numeric"`
}

type DatasetResponse struct {
	ID       string           `json:"id"`
	Source   string           `json:"source"`
	Rows     int              `json:"rows"`
	Columns  []ColumnResponse `json:"columns"`
	LoadedAt string           `json:"loaded_at" example:"2025-12-07T10:00:00Z"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty"`
}
