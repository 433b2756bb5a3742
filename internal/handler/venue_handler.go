package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/omarfessi/fyyur/internal/dto"
	"github.com/omarfessi/fyyur/internal/models"
	"github.com/omarfessi/fyyur/internal/monitoring"
	"github.com/omarfessi/fyyur/internal/service"
	"github.com/labstack/echo/v4"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

func (h *VenueHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("/search", h.Search)
	g.POST("/create", h.Create)
	g.GET("/:id", h.Detail)
	g.GET("/:id/edit", h.EditForm)
	g.POST("/:id/edit", h.Edit)
	g.DELETE("/:id", h.Delete)
}

// List renders the venues index: location groups with per-venue upcoming
// counts, relative to the moment this request is handled.
func (h *VenueHandler) List(c echo.Context) error {
	groups, err := h.svc.ListByLocation(c.Request().Context(), time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *VenueHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.svc.Search(c.Request().Context(), req.SearchTerm, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// Detail redirects to the index for an unknown id, matching the site's
// navigation; the aggregation is never invoked in that case.
func (h *VenueHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	page, err := h.svc.GetPage(c.Request().Context(), uint(id), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

func (h *VenueHandler) Create(c echo.Context) error {
	var req dto.VenueRequest
	if err := c.Bind(&req); err != nil {
		monitoring.ObserveWrite("venue", "create", "validation")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if isFormSubmission(c) {
		req.SeekingTalent = formFlag(c, "seeking_talent")
	}

	venue := venueFromRequest(&req)
	if err := h.svc.Create(c.Request().Context(), venue); err != nil {
		if errors.Is(err, service.ErrValidation) {
			monitoring.ObserveWrite("venue", "create", "validation")
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		// Write failures are reported as a notice, never as a 500.
		monitoring.ObserveWrite("venue", "create", "error")
		return echo.NewHTTPError(http.StatusBadRequest, "Venue "+req.Name+" could not be listed.")
	}

	monitoring.ObserveWrite("venue", "create", "ok")
	return c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

// EditForm returns the stored record for prefilling the edit form.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	venue, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *VenueHandler) Edit(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	var req dto.VenueRequest
	if err := c.Bind(&req); err != nil {
		monitoring.ObserveWrite("venue", "update", "validation")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if isFormSubmission(c) {
		req.SeekingTalent = formFlag(c, "seeking_talent")
	}

	venue := venueFromRequest(&req)
	if err := h.svc.Update(c.Request().Context(), uint(id), venue); err != nil {
		switch {
		case errors.Is(err, service.ErrVenueNotFound):
			monitoring.ObserveWrite("venue", "update", "validation")
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		case errors.Is(err, service.ErrValidation):
			monitoring.ObserveWrite("venue", "update", "validation")
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			monitoring.ObserveWrite("venue", "update", "error")
			return echo.NewHTTPError(http.StatusBadRequest, "Venue could not be changed.")
		}
	}

	monitoring.ObserveWrite("venue", "update", "ok")
	return c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			monitoring.ObserveWrite("venue", "delete", "validation")
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		monitoring.ObserveWrite("venue", "delete", "error")
		return echo.NewHTTPError(http.StatusBadRequest, "Venue could not be deleted.")
	}

	monitoring.ObserveWrite("venue", "delete", "ok")
	return c.JSON(http.StatusOK, map[string]string{"message": "venue deleted"})
}

func venueFromRequest(req *dto.VenueRequest) *models.Venue {
	return &models.Venue{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		Genres:             req.Genres,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		WebsiteLink:        req.WebsiteLink,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}
}
