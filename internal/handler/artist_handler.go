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

type ArtistHandler struct {
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

func (h *ArtistHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("/search", h.Search)
	g.POST("/create", h.Create)
	g.GET("/:id", h.Detail)
	g.GET("/:id/edit", h.EditForm)
	g.POST("/:id/edit", h.Edit)
}

func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Search(c echo.Context) error {
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

func (h *ArtistHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	page, err := h.svc.GetPage(c.Request().Context(), uint(id), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ArtistHandler) Create(c echo.Context) error {
	var req dto.ArtistRequest
	if err := c.Bind(&req); err != nil {
		monitoring.ObserveWrite("artist", "create", "validation")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if isFormSubmission(c) {
		req.SeekingVenue = formFlag(c, "seeking_venue")
	}

	artist := artistFromRequest(&req)
	if err := h.svc.Create(c.Request().Context(), artist); err != nil {
		if errors.Is(err, service.ErrValidation) {
			monitoring.ObserveWrite("artist", "create", "validation")
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		monitoring.ObserveWrite("artist", "create", "error")
		return echo.NewHTTPError(http.StatusBadRequest, "Artist "+req.Name+" could not be listed.")
	}

	monitoring.ObserveWrite("artist", "create", "ok")
	return c.JSON(http.StatusCreated, dto.ToArtistResponse(artist))
}

func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	artist, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}

func (h *ArtistHandler) Edit(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}

	var req dto.ArtistRequest
	if err := c.Bind(&req); err != nil {
		monitoring.ObserveWrite("artist", "update", "validation")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if isFormSubmission(c) {
		req.SeekingVenue = formFlag(c, "seeking_venue")
	}

	artist := artistFromRequest(&req)
	if err := h.svc.Update(c.Request().Context(), uint(id), artist); err != nil {
		switch {
		case errors.Is(err, service.ErrArtistNotFound):
			monitoring.ObserveWrite("artist", "update", "validation")
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		case errors.Is(err, service.ErrValidation):
			monitoring.ObserveWrite("artist", "update", "validation")
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			monitoring.ObserveWrite("artist", "update", "error")
			return echo.NewHTTPError(http.StatusBadRequest, "Artist could not be changed.")
		}
	}

	monitoring.ObserveWrite("artist", "update", "ok")
	return c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}

func artistFromRequest(req *dto.ArtistRequest) *models.Artist {
	return &models.Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Genres:             req.Genres,
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		WebsiteLink:        req.WebsiteLink,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}
}
