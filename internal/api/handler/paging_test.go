package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func pagingContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 0, 10},
		{"explicit", "page=2&size=25", 2, 25},
		{"negative page clamped", "page=-3", 0, 10},
		{"zero size clamped to one", "size=0", 0, 1},
		{"negative size clamped to one", "size=-5", 0, 1},
		{"oversized clamped", "size=500", 0, 100},
		{"garbage ignored", "page=abc&size=xyz", 0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, size := pageParams(pagingContext(tc.query))
			if page != tc.wantPage || size != tc.wantSize {
				t.Fatalf("got page=%d size=%d, want page=%d size=%d", page, size, tc.wantPage, tc.wantSize)
			}
		})
	}
}

func TestNewPagedResponse(t *testing.T) {
	p := newPagedResponse([]string{"a", "b"}, 1, 10, 21)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 21 items of size 10, got %d", p.TotalPages)
	}
	if p.TotalElements != 21 || p.Page != 1 || p.Size != 10 {
		t.Fatalf("unexpected envelope: %+v", p)
	}

	empty := newPagedResponse([]string{}, 0, 10, 0)
	if empty.TotalPages != 0 {
		t.Fatalf("expected 0 pages for empty set, got %d", empty.TotalPages)
	}
}
