package httpkit

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestPaging_DefaultsAndBounds(t *testing.T) {
	r := httptest.NewRequest("GET", "/repos/octocat", nil)

	pq, err := Paging(r, 30)
	if err != nil {
		t.Fatalf("Paging default: %v", err)
	}
	if pq.Page != 1 || pq.PerPage != 30 {
		t.Fatalf("expected page=1 per_page=30, got %+v", pq)
	}

	r = httptest.NewRequest("GET", "/repos/octocat?page=3&per_page=50", nil)
	pq, err = Paging(r, 30)
	if err != nil {
		t.Fatalf("Paging explicit: %v", err)
	}
	if pq.Page != 3 || pq.PerPage != 50 {
		t.Fatalf("expected page=3 per_page=50, got %+v", pq)
	}

	r = httptest.NewRequest("GET", "/repos/octocat?per_page=500", nil)
	if _, err := Paging(r, 30); err == nil {
		t.Fatalf("expected error for per_page out of bounds")
	}
}

// Paging returns the PageQuery binding; the Page name stays reserved for the
// envelope pagination metadata type.
func TestPaging_DistinctFromPageMetadata(t *testing.T) {
	var meta Page
	meta.Total = 7

	r := httptest.NewRequest("GET", "/repos/octocat?page=2", nil)
	pq, err := Paging(r, 30)
	if err != nil {
		t.Fatalf("Paging: %v", err)
	}
	if pq.Page != 2 || meta.Total != 7 {
		t.Fatalf("expected query page=2 and metadata total=7, got %+v / %+v", pq, meta)
	}
}

func TestUsername_ValidatesRouteParam(t *testing.T) {
	cases := []struct {
		login string
		ok    bool
	}{
		{"octocat", true},
		{"a-b-c123", true},
		{"-leading", false},
		{"double--dash", false},
		{"", false},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/users/x", nil)
		rc := chi.NewRouteContext()
		rc.URLParams.Add("username", tc.login)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))

		got, err := Username(r)
		if tc.ok && (err != nil || got != tc.login) {
			t.Fatalf("Username(%q): got %q err=%v", tc.login, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("Username(%q): expected error", tc.login)
		}
	}
}

func TestLimit_CapAndDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/repos/octocat/popular", nil)
	n, err := Limit(r, 6, 20)
	if err != nil || n != 6 {
		t.Fatalf("default limit: got %d err=%v", n, err)
	}

	r = httptest.NewRequest("GET", "/repos/octocat/popular?limit=12", nil)
	n, err = Limit(r, 6, 20)
	if err != nil || n != 12 {
		t.Fatalf("explicit limit: got %d err=%v", n, err)
	}

	r = httptest.NewRequest("GET", "/repos/octocat/popular?limit=99", nil)
	if _, err := Limit(r, 6, 20); err == nil {
		t.Fatalf("expected error for limit above cap")
	}
}
