package bind

import (
	"net/http"
	"strconv"
	"strings"

	perr "gitfolio/internal/platform/errors"
)

// PageQuery carries normalized page/per_page query values
type PageQuery struct {
	Page    int
	PerPage int
}

// Query parses page/per_page from the query string with bounds checking
// page defaults to 1, per_page to def; both are capped at 1..100
func Query(r *http.Request, def int) (PageQuery, error) {
	q := r.URL.Query()
	out := PageQuery{Page: 1, PerPage: def}

	if s := strings.TrimSpace(q.Get("page")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return out, perr.WithField(perr.InvalidArgf("page must be a positive integer"), "page")
		}
		out.Page = n
	}
	if s := strings.TrimSpace(q.Get("per_page")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 100 {
			return out, perr.WithField(perr.InvalidArgf("per_page must be 1..100"), "per_page")
		}
		out.PerPage = n
	}
	return out, nil
}

// Limit parses an optional positive "limit" query value capped at max
func Limit(r *http.Request, def, max int) (int, error) {
	s := strings.TrimSpace(r.URL.Query().Get("limit"))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > max {
		return def, perr.WithField(perr.InvalidArgf("limit must be 1..%d", max), "limit")
	}
	return n, nil
}

// Login validates a GitHub username taken from the URL path
func Login(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", perr.WithField(perr.InvalidArgf("username is required"), "username")
	}
	if err := Get().Validator.Var(s, "gh_login"); err != nil {
		return "", perr.WithField(perr.InvalidArgf("invalid GitHub username"), "username")
	}
	return s, nil
}
