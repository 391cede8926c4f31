package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeruamusic/site-api/internal/handler"
	"github.com/zeruamusic/site-api/internal/router"
	"github.com/zeruamusic/site-api/internal/supabase"
)

type backendCall struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// newTestServer wires the admin routes over a recording fake backend that
// answers every request with the given body.
func newTestServer(t *testing.T, status int, responseBody string) (*echo.Echo, *[]backendCall) {
	t.Helper()
	var calls []backendCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, backendCall{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(srv.Close)

	db, err := supabase.New(srv.URL, "key")
	require.NoError(t, err)

	e := echo.New()
	router.RegisterAdmin(e, handler.NewAdminHandler(db, zerolog.Nop()))
	return e, &calls
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateTourDateReportsAllFieldFailures(t *testing.T) {
	e, calls := newTestServer(t, http.StatusOK, `[]`)

	rec := doJSON(e, http.MethodPost, "/api/admin/tour-dates",
		`{"event_date":"02/11/2025","city":"","venue":"Barrowlands","ticket_url":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["error"], "event_date must be in YYYY-MM-DD format")
	assert.Contains(t, envelope["error"], "city")
	assert.Contains(t, envelope["error"], "ticket_url must be a valid URL")
	assert.Empty(t, *calls, "invalid input must not reach the backend")
}

func TestCreateTourDateClearsTicketURLWhenFree(t *testing.T) {
	e, calls := newTestServer(t, http.StatusCreated,
		`[{"id":"1","event_date":"2025-11-02","city":"Glasgow","venue":"Barrowlands","ticket_url":"","is_free":true,"is_sold_out":false,"order_index":0}]`)

	rec := doJSON(e, http.MethodPost, "/api/admin/tour-dates",
		`{"event_date":"2025-11-02","city":"Glasgow","venue":"Barrowlands","ticket_url":"https://tickets.example.com/1","is_free":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, *calls, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal((*calls)[0].Body, &sent))
	assert.Equal(t, "", sent["ticket_url"], "free events never keep a ticket URL")
	assert.Equal(t, true, sent["is_free"])
}

func TestCreateReleaseDefaults(t *testing.T) {
	e, calls := newTestServer(t, http.StatusCreated,
		`[{"id":"9","title":"New","subtitle":null,"cover_image_path":"/c.png","release_date":null,"is_featured":false,"order_index":0}]`)

	rec := doJSON(e, http.MethodPost, "/api/admin/releases",
		`{"title":"New","cover_image_path":"/c.png"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, *calls, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal((*calls)[0].Body, &sent))
	assert.Nil(t, sent["release_date"], "unspecified release_date stays null")
	assert.Equal(t, false, sent["is_featured"])
	assert.Equal(t, float64(0), sent["order_index"])

	var envelope struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "9", envelope.Data.ID)
}

func TestReorderEndpoint(t *testing.T) {
	e, calls := newTestServer(t, http.StatusOK, `[]`)

	rec := doJSON(e, http.MethodPost, "/api/admin/merch-items/reorder",
		`{"ids":["id_a","id_b","id_c"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/rest/v1/merch_items", call.Path)
	assert.Contains(t, call.Query, "on_conflict=id")
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(call.Body, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, float64(1), rows[1]["order_index"])
}

func TestReorderRejectsMissingIDs(t *testing.T) {
	e, calls := newTestServer(t, http.StatusOK, `[]`)
	rec := doJSON(e, http.MethodPost, "/api/admin/charts/reorder", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, *calls)
}

func TestDeleteReleaseCascadesToLinks(t *testing.T) {
	e, calls := newTestServer(t, http.StatusNoContent, ``)

	rec := doJSON(e, http.MethodDelete, "/api/admin/releases/r1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, *calls, 2)
	assert.Equal(t, "/rest/v1/release_platform_links", (*calls)[0].Path)
	assert.Contains(t, (*calls)[0].Query, "release_id=eq.r1")
	assert.Equal(t, "/rest/v1/releases", (*calls)[1].Path)
	assert.Contains(t, (*calls)[1].Query, "id=eq.r1")
}

func TestCreateMerchItemAcceptsNumericStringOrderIndex(t *testing.T) {
	e, calls := newTestServer(t, http.StatusCreated,
		`[{"id":"m1","title":"Tee","image_path":"tee.png","url":"https://shop.example.com","order_index":4}]`)

	rec := doJSON(e, http.MethodPost, "/api/admin/merch-items",
		`{"title":"Tee","image_path":"tee.png","url":"https://shop.example.com","order_index":"4"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, *calls, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal((*calls)[0].Body, &sent))
	assert.Equal(t, float64(4), sent["order_index"])
}

func TestGetSiteContentAbsentKeyIsNull(t *testing.T) {
	e, _ := newTestServer(t, http.StatusOK, `[]`)
	rec := doJSON(e, http.MethodGet, "/api/admin/site-content/about", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":null}`, rec.Body.String())
}

func TestPatchFeaturedVideoRejectsBadURL(t *testing.T) {
	e, calls := newTestServer(t, http.StatusOK, `[]`)
	rec := doJSON(e, http.MethodPatch, "/api/admin/featured-video", `{"url":"not-a-url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "featuredVideoUrl must be a valid URL")
	assert.Empty(t, *calls)
}

func TestBackendFailureSurfacesUpstreamBody(t *testing.T) {
	e, _ := newTestServer(t, http.StatusConflict, `duplicate key value`)
	rec := doJSON(e, http.MethodPost, "/api/admin/merch-items",
		`{"title":"Tee","image_path":"tee.png","url":"https://shop.example.com"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate key value")
}

func multipartUpload(t *testing.T, field, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadRejectsUnknownBucket(t *testing.T) {
	e, calls := newTestServer(t, http.StatusOK, `{}`)
	body, ctype := multipartUpload(t, "file", "cover.png", "image/png", []byte("png"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload?bucket=secrets", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid bucket")
	assert.Empty(t, *calls)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	e, calls := newTestServer(t, http.StatusOK, `{}`)
	body, ctype := multipartUpload(t, "file", "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload?bucket=merch", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported file type")
	assert.Empty(t, *calls)
}

func TestUploadStoresSanitizedTimestampedPath(t *testing.T) {
	e, calls := newTestServer(t, http.StatusOK, `{}`)
	body, ctype := multipartUpload(t, "file", "band photo (1).png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload?bucket=release-covers", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.Method)
	assert.True(t, strings.HasPrefix(call.Path, "/storage/v1/object/release-covers/"), call.Path)
	// "band photo (1).png" sanitized: spaces and parens become underscores
	assert.Contains(t, call.Path, "-band_photo__1_.png")
	assert.Equal(t, "png-bytes", string(call.Body))
}
