package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apierrors "evrental/internal/errors"
	"evrental/internal/repository"
)

// PagedResponse is the envelope every listing endpoint returns.
type PagedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

func newPagedResponse(data interface{}, total int64, q repository.ListQuery) PagedResponse {
	return PagedResponse{
		Data:       data,
		Total:      total,
		Page:       q.Page,
		TotalPages: repository.TotalPages(total, q.Limit),
	}
}

// parseListQuery reads the shared paging/filter params and normalizes them,
// so the echoed page matches what was actually queried.
func parseListQuery(c echo.Context) repository.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return repository.ListQuery{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}.Normalize()
}

// respondError translates a service error into the standardized HTTP error.
func respondError(err error) error {
	httpErr := apierrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
