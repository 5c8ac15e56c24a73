package practitioner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handler exposes the lookup operations over HTTP and owns the mapping
// from outcomes to status codes: 200 for data, 404 for a clean miss,
// 503 when an upstream is down, 400 for an unusable request.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/practitioners/:rpps", h.GetPractitioner)
	api.GET("/practitioners/gov/:rpps", h.GetPractitionerGov)
	api.GET("/practitioners/directory/:rpps", h.GetPractitionerDirectory)
	api.GET("/practitioners/:firstname/:lastname", h.SearchPractitioners)
}

// GetPractitioner serves the merged profile built from both sources.
func (h *Handler) GetPractitioner(c echo.Context) error {
	p, err := h.svc.Lookup(c.Request().Context(), c.Param("rpps"))
	if err != nil {
		return h.errorResponse(c, err, "No practitioner found")
	}
	return c.JSON(http.StatusOK, p)
}

// GetPractitionerGov serves the government record alone.
func (h *Handler) GetPractitionerGov(c echo.Context) error {
	rec, err := h.svc.LookupGov(c.Request().Context(), c.Param("rpps"))
	if err != nil {
		return h.errorResponse(c, err, "This practitioner hasn't entered enough information")
	}
	return c.JSON(http.StatusOK, rec)
}

// GetPractitionerDirectory serves the directory record alone.
func (h *Handler) GetPractitionerDirectory(c echo.Context) error {
	rec, err := h.svc.LookupDir(c.Request().Context(), c.Param("rpps"))
	if err != nil {
		return h.errorResponse(c, err, "No practitioner found")
	}
	return c.JSON(http.StatusOK, rec)
}

// SearchPractitioners serves a name search. "null" in either path
// position ignores that name part; ?pageSize= bounds the result list,
// capped by the directory's page ceiling.
func (h *Handler) SearchPractitioners(c echo.Context) error {
	pageSize := 0
	if raw := c.QueryParam("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, errorBody("pageSize must be a positive integer"))
		}
		pageSize = n
	}

	list, err := h.svc.SearchByName(
		c.Request().Context(),
		c.Param("firstname"),
		c.Param("lastname"),
		pageSize,
	)
	if err != nil {
		return h.errorResponse(c, err, "No practitioner found")
	}
	return c.JSON(http.StatusOK, list)
}

// errorResponse translates the service error taxonomy. notFoundMsg keeps
// the per-route 404 wording of the original contract.
func (h *Handler) errorResponse(c echo.Context, err error, notFoundMsg string) error {
	var invalid *InvalidRequestError
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, errorBody(invalid.Reason))
	}

	var unavailable *UnavailableError
	if errors.As(err, &unavailable) {
		sources := make([]string, len(unavailable.Sources))
		for i, s := range unavailable.Sources {
			sources[i] = string(s)
		}
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"message": "error : upstream unavailable",
			"sources": sources,
		})
	}

	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorBody(notFoundMsg))
	}
	return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
}

func errorBody(msg string) map[string]string {
	return map[string]string{"message": "error : " + msg}
}
