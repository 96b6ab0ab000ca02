package web_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoide/supplywatch/internal/service"
	"github.com/tkoide/supplywatch/internal/view"
	"github.com/tkoide/supplywatch/internal/web"
	"github.com/tkoide/supplywatch/internal/web/templates"
)

// stubFetcher serves a fixed export, optionally failing after the first
// successful fetch.
type stubFetcher struct {
	payload       string
	failAfterOnce bool
	fetched       bool
}

func (f *stubFetcher) Fetch(context.Context) (string, error) {
	if f.failAfterOnce && f.fetched {
		return "", errors.New("sheet unreachable")
	}
	f.fetched = true
	return f.payload, nil
}

func testExport() string {
	soon := time.Now().AddDate(0, 0, 45).Format("2006-01-02")
	return fmt.Sprintf("name,category,quantity,expiry-date,note\n"+
		"Water,Water,10,-,\n"+
		"Rice,Food,5,2099-01-01,\n"+
		"Crackers,Food,3,%s,\n"+
		"Old meds,Medical,1,2000-01-01,check cabinet\n", soon)
}

func newTestServer(f *stubFetcher) *web.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var svc *service.InventoryService
	if f == nil {
		svc = service.NewInventoryService(nil, logger)
	} else {
		svc = service.NewInventoryService(f, logger)
	}
	return web.NewServer(svc, templates.FS, view.DefaultIcons(), logger)
}

func get(t *testing.T, srv *web.Server, path string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func postRefresh(t *testing.T, srv *web.Server, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"category": {"all"}, "sort": {"none"}}
	req := httptest.NewRequest(http.MethodPost, "/refresh", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestDashboardRendersInventory(t *testing.T) {
	srv := newTestServer(&stubFetcher{payload: testExport()})

	rec := get(t, srv, "/", false)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<html")
	assert.Contains(t, body, "Water")
	assert.Contains(t, body, "Old meds")
	// The past-dated item lands in the urgent panel.
	assert.Contains(t, body, "expired")
	assert.NotContains(t, body, "No urgent items")
}

func TestDashboardUnconfigured(t *testing.T) {
	srv := newTestServer(nil)

	rec := get(t, srv, "/", false)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "No sheet URL is configured")
	assert.Contains(t, body, "No items loaded")
	assert.Contains(t, body, "No urgent items")
}

func TestItemsPartialFiltersAndSorts(t *testing.T) {
	srv := newTestServer(&stubFetcher{payload: testExport()})
	// Prime the snapshot.
	require.Equal(t, http.StatusOK, get(t, srv, "/", false).Code)

	rec := get(t, srv, "/items?category=Food&sort=expiry", true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	// Partial response, not a full page.
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, "Rice")
	assert.Contains(t, body, "Crackers")
	assert.NotContains(t, body, "<td>Water</td>")
	// Summary still covers the full set.
	assert.Contains(t, body, "<span>4</span> total")
}

func TestItemsWithoutHTMXRendersFullPage(t *testing.T) {
	srv := newTestServer(&stubFetcher{payload: testExport()})

	rec := get(t, srv, "/items", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<html")
}

func TestRefreshFailureKeepsItemsAndShowsNotice(t *testing.T) {
	srv := newTestServer(&stubFetcher{payload: testExport(), failAfterOnce: true})
	// First load succeeds.
	require.Equal(t, http.StatusOK, get(t, srv, "/", false).Code)

	rec := postRefresh(t, srv, true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Refresh failed")
	// The stale-but-loaded items are still rendered.
	assert.Contains(t, body, "Water")
	assert.Contains(t, body, "Rice")
}

func TestRefreshWithoutHTMXRedirects(t *testing.T) {
	srv := newTestServer(&stubFetcher{payload: testExport()})

	rec := postRefresh(t, srv, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(&stubFetcher{payload: testExport()})

	rec := get(t, srv, "/", false)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
