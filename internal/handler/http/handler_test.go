package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testID  = "abcdefghijklmnop"
	testKey = "abcdefghijklmnopqrstuvwxyz012345"
)

type testDeps struct {
	sync    *mock.MockSyncService
	share   *mock.MockShareService
	appInfo *mock.MockAppInfoService
}

func newTestRouter(t *testing.T, cfg config.Server, hashKey string, sweeper Sweeper) (http.Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		sync:    mock.NewMockSyncService(ctrl),
		share:   mock.NewMockShareService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		SyncService:    deps.sync,
		ShareService:   deps.share,
		AppInfoService: deps.appInfo,
	}
	return NewHandler(services, sweeper, cfg, hashKey, logger.Nop()).Init(), deps
}

func postData(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func actionBody(action models.Action, extra string) string {
	s := `{"action":"` + string(action) + `","id":"` + testID + `","key":"` + testKey + `"`
	if extra != "" {
		s += "," + extra
	}
	return s + "}"
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, nil, config.Server{}, "", logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Nil(t, h.limiter, "rate limiting is off without a limit")
	assert.NotNil(t, h.validator)
}

// ── read ─────────────────────────────────────────────────────────────────────

func TestData_Read(t *testing.T) {
	tests := []struct {
		name       string
		notes      models.EntityMap
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			notes:      models.EntityMap{"a": {Content: models.Content{Text: "hi"}, LastModified: 5}},
			wantStatus: http.StatusOK,
			wantBody:   `{"a":{"content":{"text":"hi"},"createdAt":0,"lastModified":5}}`,
		},
		{name: "not found", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantBody: `{"error":true}`},
		{name: "invalid key", err: service.ErrInvalidKey, wantStatus: http.StatusForbidden, wantBody: `{"error":"invalidkey"}`},
		{name: "storage failure", err: errors.New("disk is gone"), wantStatus: http.StatusInternalServerError, wantBody: `{"error":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, config.Server{}, "", nil)
			deps.sync.EXPECT().Read(gomock.Any(), testID, testKey).Return(tt.notes, tt.err)

			rr := postData(t, router, actionBody(models.ActionRead, ""))
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

// ── uploadAndMerge ───────────────────────────────────────────────────────────

func TestData_UploadAndMerge(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{}, "", nil)
	body := models.EntityMap{"a": {Content: models.Content{Text: "mine"}, LastModified: 5}}
	delta := models.EntityMap{"b": {Content: models.Content{Text: "theirs"}, LastModified: 7}}
	deps.sync.EXPECT().UploadAndMerge(gomock.Any(), testID, testKey, body).Return(delta, nil)

	rr := postData(t, router, actionBody(models.ActionUploadAndMerge, `"body":{"a":{"content":{"text":"mine"},"lastModified":5,"createdAt":0}}`))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.MergeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, delta, resp.Body)
}

func TestData_UploadAndMerge_EmptyArrayBody(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{}, "", nil)
	deps.sync.EXPECT().UploadAndMerge(gomock.Any(), testID, testKey, models.EntityMap{}).Return(models.EntityMap{}, nil)

	rr := postData(t, router, actionBody(models.ActionUploadAndMerge, `"body":[]`))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"body":{}}`, rr.Body.String())
}

func TestData_UploadAndMerge_Limit(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{}, "", nil)
	deps.sync.EXPECT().UploadAndMerge(gomock.Any(), testID, testKey, gomock.Any()).Return(nil, service.ErrLimit)

	rr := postData(t, router, actionBody(models.ActionUploadAndMerge, `"body":{}`))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error":"limit"}`, rr.Body.String())
}

// ── createSharedNote / getSharedNote ─────────────────────────────────────────

func TestData_CreateSharedNote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, deps := newTestRouter(t, config.Server{}, "", nil)
		deps.share.EXPECT().CreateShare(gomock.Any(), testID, testKey, json.RawMessage(`{"r":{}}`)).Return(nil)

		rr := postData(t, router, actionBody(models.ActionCreateSharedNote, `"content":{"r":{}}`))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"id":"`+testID+`","key":"`+testKey+`"}`, rr.Body.String())
	})

	t.Run("exists", func(t *testing.T) {
		router, deps := newTestRouter(t, config.Server{}, "", nil)
		deps.share.EXPECT().CreateShare(gomock.Any(), testID, testKey, gomock.Any()).Return(service.ErrExists)

		rr := postData(t, router, actionBody(models.ActionCreateSharedNote, `"content":{}`))
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.JSONEq(t, `{"error":"exists"}`, rr.Body.String())
	})

	t.Run("missing content", func(t *testing.T) {
		router, _ := newTestRouter(t, config.Server{}, "", nil)

		rr := postData(t, router, actionBody(models.ActionCreateSharedNote, ""))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"malformed"}`, rr.Body.String())
	})
}

func TestData_GetSharedNote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, deps := newTestRouter(t, config.Server{}, "", nil)
		deps.share.EXPECT().ResolveShare(gomock.Any(), testID, testKey).Return(json.RawMessage(`{"r":{"content":{"text":"x"}}}`), nil)

		rr := postData(t, router, actionBody(models.ActionGetSharedNote, ""))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"body":{"r":{"content":{"text":"x"}}}}`, rr.Body.String())
	})

	t.Run("does not exist", func(t *testing.T) {
		router, deps := newTestRouter(t, config.Server{}, "", nil)
		deps.share.EXPECT().ResolveShare(gomock.Any(), testID, testKey).Return(nil, service.ErrNotFound)

		rr := postData(t, router, actionBody(models.ActionGetSharedNote, ""))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"does not exist"}`, rr.Body.String())
	})

	t.Run("invalid key", func(t *testing.T) {
		router, deps := newTestRouter(t, config.Server{}, "", nil)
		deps.share.EXPECT().ResolveShare(gomock.Any(), testID, testKey).Return(nil, service.ErrInvalidKey)

		rr := postData(t, router, actionBody(models.ActionGetSharedNote, ""))
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"error":"invalidkey"}`, rr.Body.String())
	})
}

// ── Malformed requests ───────────────────────────────────────────────────────

func TestData_RejectedBeforeServices(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "not json", body: `action=read`, wantStatus: http.StatusBadRequest, wantBody: `{"error":"invalid_json"}`},
		{name: "array", body: `[1,2]`, wantStatus: http.StatusBadRequest, wantBody: `{"error":"invalid_json"}`},
		{
			name:       "unknown action",
			body:       `{"action":"drop","id":"` + testID + `","key":"` + testKey + `"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"unknown_action"}`,
		},
		{
			name:       "path in id",
			body:       `{"action":"read","id":"../../../etc","key":"` + testKey + `"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"malformed"}`,
		},
		{
			name:       "short key",
			body:       `{"action":"read","id":"` + testID + `","key":"k"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"malformed"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// моки без ожиданий: сервисы вызываться не должны
			router, _ := newTestRouter(t, config.Server{}, "", nil)

			rr := postData(t, router, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

// ── Routes ───────────────────────────────────────────────────────────────────

func TestInit_Routes(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{}, "", nil)
	deps.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "2026-03-01", "abc")).AnyTimes()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/version/", http.StatusOK},
		{http.MethodGet, "/api/data", http.StatusNotFound},
		{http.MethodPut, "/api/data", http.StatusNotFound},
		{http.MethodPost, "/api/version/", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	router, deps := newTestRouter(t, config.Server{}, "", nil)
	deps.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "", "abc"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.2.3","date":"N/A","commit":"abc"}`, rr.Body.String())
}

// ── Sweep ────────────────────────────────────────────────────────────────────

type chanSweeper struct {
	calls chan context.Context
}

func (s *chanSweeper) MaybeSweep(ctx context.Context) bool {
	s.calls <- ctx
	return true
}

func TestData_OffersSweepAfterRequest(t *testing.T) {
	sweeper := &chanSweeper{calls: make(chan context.Context, 1)}
	router, deps := newTestRouter(t, config.Server{}, "", sweeper)
	deps.sync.EXPECT().Read(gomock.Any(), testID, testKey).Return(nil, service.ErrNotFound)

	rr := postData(t, router, actionBody(models.ActionRead, ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	select {
	case ctx := <-sweeper.calls:
		assert.NoError(t, ctx.Err(), "sweep context must outlive the request")
	case <-time.After(time.Second):
		t.Fatal("sweeper was not offered a run")
	}
}

func TestVersion_DoesNotOfferSweep(t *testing.T) {
	sweeper := &chanSweeper{calls: make(chan context.Context, 1)}
	router, deps := newTestRouter(t, config.Server{}, "", sweeper)
	deps.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppBuildInfo{Version: "1"})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	select {
	case <-sweeper.calls:
		t.Fatal("version requests must not trigger a sweep")
	case <-time.After(50 * time.Millisecond):
	}
}

var errNotFoundForTest = service.ErrNotFound
