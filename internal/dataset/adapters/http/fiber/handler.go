package fiber

import (
	"context"
	"net/http"
	"time"

	"emissions-dashboard-service/internal/dataset/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type DescribeDatasetUseCase interface {
	Execute(ctx context.Context) (*usecase.DatasetInfo, error)
}

type DatasetHandler struct {
	uc DescribeDatasetUseCase
}

func NewDatasetHandler(uc DescribeDatasetUseCase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// GetDataset godoc
// @Summary Describe the loaded dataset
// @Description Returns the snapshot id, source, row count and column schema of the in-memory dataset
// @Tags Dataset
// @Produce json
// @Success 200 {object} DatasetResponse
// @Failure 500 {object} ErrorResponse
// @Router /dataset [get]
func (h *DatasetHandler) GetDataset(c *fiber.Ctx) error {
	info, err := h.uc.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := DatasetResponse{
		ID:       info.ID,
		Source:   info.Source,
		Rows:     info.Rows,
		Columns:  make([]ColumnResponse, 0, len(info.Columns)),
		LoadedAt: info.LoadedAt.UTC().Format(time.RFC3339),
	}
	for _, col := range info.Columns {
		resp.Columns = append(resp.Columns, ColumnResponse{
			Name:    col.Name,
			Numeric: col.Numeric,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
