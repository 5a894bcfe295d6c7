package web

import (
	"context"
	"errors"
	"net/http"

	dataset "emissions-dashboard-service/internal/dataset/core/domain"
	"emissions-dashboard-service/internal/views/core/domain"
	"emissions-dashboard-service/internal/views/core/usecase"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

const DashboardTitle = "Fuel Consumption and CO2 Emissions Analysis"

type RenderViewUseCase interface {
	ListViews() []domain.ViewSpec
	Execute(ctx context.Context, in usecase.RenderViewInput) (*domain.ViewResult, error)
}

type DashboardHandler struct {
	uc RenderViewUseCase
}

func NewDashboardHandler(uc RenderViewUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Index serves the full dashboard page.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	return render(c, http.StatusOK, DashboardPage(DashboardTitle, h.uc.ListViews()))
}

// View serves the HTML fragment for one view. Schema errors are shown inline
// so the rest of the dashboard keeps working.
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	res, err := h.uc.Execute(c.UserContext(), usecase.RenderViewInput{ViewID: c.Params("id")})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownView):
			return render(c, http.StatusNotFound, ErrorFragment("Unknown view."))
		case errors.Is(err, dataset.ErrSchema):
			return render(c, http.StatusOK, ErrorFragment(err.Error()))
		default:
			return render(c, http.StatusInternalServerError, ErrorFragment("Something went wrong."))
		}
	}
	return render(c, http.StatusOK, ViewFragment(res))
}

func render(c *fiber.Ctx, status int, component g.Node) error {
	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}
