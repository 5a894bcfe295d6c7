package fiber

import (
	"context"
	"errors"
	"net/http"

	dataset "emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/views/core/domain"
	"emissions-dashboard-service/internal/views/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RenderViewUseCase interface {
	ListViews() []domain.ViewSpec
	Execute(ctx context.Context, in usecase.RenderViewInput) (*domain.ViewResult, error)
}

type ViewHandler struct {
	uc RenderViewUseCase
}

func NewViewHandler(uc RenderViewUseCase) *ViewHandler {
	return &ViewHandler{uc: uc}
}

// ListViews godoc
// @Summary List dashboard views
// @Description Returns the navigation entries in display order
// @Tags Views
// @Produce json
// @Success 200 {object} ViewListResponse
// @Router /views [get]
func (h *ViewHandler) ListViews(c *fiber.Ctx) error {
	specs := h.uc.ListViews()

	resp := ViewListResponse{
		Views: make([]ViewSummaryResponse, 0, len(specs)),
	}
	for _, s := range specs {
		resp.Views = append(resp.Views, ViewSummaryResponse{
			ID:     s.ID,
			Label:  s.Label,
			Output: string(s.Output),
			Chart:  s.Chart,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetView godoc
// @Summary Render one view
// @Description Computes the view against the loaded dataset and returns chart-ready data
// @Tags Views
// @Produce json
// @Param id path string true "View id"
// @Success 200 {object} ViewResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /views/{id} [get]
func (h *ViewHandler) GetView(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.uc.Execute(c.UserContext(), usecase.RenderViewInput{ViewID: id})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownView):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "unknown_view",
				Message: err.Error(),
			})
		case errors.Is(err, dataset.ErrSchema):
			return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
				Error:   "schema_error",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toViewResponse(res))
}

func toViewResponse(res *domain.ViewResult) ViewResponse {
	resp := ViewResponse{
		ID:     res.ViewID,
		Title:  res.Title,
		Kind:   string(res.Kind),
		Chart:  res.Chart,
		XLabel: res.XLabel,
		YLabel: res.YLabel,
	}

	for _, s := range res.Series {
		sr := SeriesResponse{
			Name:   s.Name,
			Points: make([]SeriesPointResponse, 0, len(s.Points)),
		}
		for _, p := range s.Points {
			sr.Points = append(sr.Points, SeriesPointResponse{
				Label: p.Label,
				Key:   p.Key,
				Value: p.Value,
			})
		}
		resp.Series = append(resp.Series, sr)
	}

	for _, p := range res.Points {
		resp.Points = append(resp.Points, PointResponse{X: p.X, Y: p.Y})
	}

	for _, t := range res.Tables {
		resp.Tables = append(resp.Tables, TableResponse{
			Title:   t.Title,
			Columns: t.Columns,
			Rows:    t.Rows,
		})
	}

	return resp
}
