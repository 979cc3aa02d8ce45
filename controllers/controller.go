// controllers/controller.go
package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vinshop/admin_console/middleware"
	"github.com/vinshop/admin_console/models"
	"github.com/vinshop/admin_console/store"
)

// defaultPageSize matches the backend's default list page.
const defaultPageSize = 10

// PageData is the bag every template receives.
type PageData map[string]interface{}

// newPageData seeds the common fields: the session and any flash messages
// carried over a redirect. Toasts auto-dismiss in the page after 3 seconds.
func newPageData(c echo.Context) PageData {
	return PageData{
		"Session": middleware.SessionFromContext(c),
		"Toast":   c.QueryParam("toast"),
		"Error":   c.QueryParam("err"),
	}
}

// pageRequest reads the 0-based page/size query params with defaults.
func pageRequest(c echo.Context) models.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 0 {
		page = 0
	}
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size <= 0 || size > 1000 {
		size = defaultPageSize
	}
	return models.PageRequest{Page: page, Size: size}
}

// redirectWithToast does the post/redirect/get dance with a success flash.
func redirectWithToast(c echo.Context, path, msg string) error {
	return c.Redirect(http.StatusSeeOther, path+"?toast="+url.QueryEscape(msg))
}

// redirectWithError carries a failure flash. API errors keep their
// {code, message} shape in the text.
func redirectWithError(c echo.Context, path string, err error) error {
	return c.Redirect(http.StatusSeeOther, path+"?err="+url.QueryEscape(errorText(err)))
}

func errorText(err error) string {
	if apiErr, ok := err.(*models.APIError); ok {
		return apiErr.Message
	}
	return err.Error()
}

// containsFold is the within-page filter primitive: case-insensitive substring.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// listMeta packs the pagination block of a container state for the templates.
func listMeta[T any](state store.State[T]) PageData {
	return PageData{
		"CurrentPage":   state.CurrentPage,
		"TotalPages":    state.TotalPages,
		"TotalElements": state.TotalElements,
		"PageSize":      state.PageSize,
		"HasPrev":       state.CurrentPage > 0,
		"HasNext":       state.CurrentPage+1 < state.TotalPages,
		"PrevPage":      state.CurrentPage - 1,
		"NextPage":      state.CurrentPage + 1,
	}
}
