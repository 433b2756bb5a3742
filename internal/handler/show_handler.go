package handler

import (
	"errors"
	"net/http"

	"github.com/omarfessi/fyyur/internal/dto"
	"github.com/omarfessi/fyyur/internal/monitoring"
	"github.com/omarfessi/fyyur/internal/service"
	"github.com/omarfessi/fyyur/internal/showtime"
	"github.com/labstack/echo/v4"
)

type ShowHandler struct {
	svc service.ShowService
}

func NewShowHandler(svc service.ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

func (h *ShowHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("/create", h.Create)
}

func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, shows)
}

func (h *ShowHandler) Create(c echo.Context) error {
	var req dto.ShowRequest
	if err := c.Bind(&req); err != nil {
		monitoring.ObserveWrite("show", "create", "validation")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	startTime, err := showtime.ParseStartTime(req.StartTime)
	if err != nil {
		monitoring.ObserveWrite("show", "create", "validation")
		return echo.NewHTTPError(http.StatusBadRequest, "start_time must look like 2006-01-02 15:04:05")
	}

	show, err := h.svc.Create(c.Request().Context(), req.VenueID, req.ArtistID, startTime)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			monitoring.ObserveWrite("show", "create", "validation")
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		monitoring.ObserveWrite("show", "create", "error")
		return echo.NewHTTPError(http.StatusBadRequest, "Show could not be listed.")
	}

	monitoring.ObserveWrite("show", "create", "ok")
	return c.JSON(http.StatusCreated, show)
}
