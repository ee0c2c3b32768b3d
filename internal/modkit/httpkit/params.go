package httpkit

import (
	"net/http"

	phttp "gitfolio/internal/platform/net/http"
	"gitfolio/internal/platform/net/http/bind"
)

// PageQuery carries normalized page/per_page query values
type PageQuery = bind.PageQuery

// Username extracts and validates the {username} route parameter
// rejects logins that do not match GitHub account naming rules
func Username(r *http.Request) (string, error) {
	return bind.Login(phttp.Param(r, "username"))
}

// Paging parses page/per_page with bounds checking; per_page defaults to def
func Paging(r *http.Request, def int) (PageQuery, error) {
	return bind.Query(r, def)
}

// Limit parses an optional positive "limit" query value capped at max
func Limit(r *http.Request, def, max int) (int, error) {
	return bind.Limit(r, def, max)
}
