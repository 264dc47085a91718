package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clearview-wipers/internal/adapters/web"
	"clearview-wipers/internal/app"
	"clearview-wipers/internal/photoid"
	"clearview-wipers/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (http.Handler, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := app.NewService(mem, nil, &photoid.Simulated{Latency: time.Millisecond}, zap.NewNop())
	require.NoError(t, svc.Start(context.Background()))
	return web.NewHandler(svc, zap.NewNop(), web.Options{
		JWTSecret: "test-secret",
		AdminPIN:  "1313",
	}), mem
}

// unlockCookie opens a session through the real unlock endpoint and returns
// the auth cookie.
func unlockCookie(t *testing.T, h http.Handler, body string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/unlock", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("no auth_token cookie set")
	return nil
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnlockRejectsWrongPIN(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/api/auth/unlock", `{"pin":"0000"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnlockGrantsAdminSession(t *testing.T) {
	h, _ := newTestHandler(t)
	cookie := unlockCookie(t, h, `{"pin":"1313"}`)

	rec := doJSON(t, h, http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var me map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "admin", me["role"])

	rec = doJSON(t, h, http.MethodGet, "/api/customers", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmployeeBlockedFromAdminRoutes(t *testing.T) {
	h, mem := newTestHandler(t)
	require.NoError(t, mem.Upsert(context.Background(), store.CollectionUsers, "emp-1", store.UserDoc{Role: "employee"}))

	cookie := unlockCookie(t, h, `{"pin":"1313","userId":"emp-1"}`)

	rec := doJSON(t, h, http.MethodGet, "/api/jobs", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code, "employees can see jobs")

	rec = doJSON(t, h, http.MethodGet, "/api/customers", "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/metrics", "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJobFlowOverHTTP(t *testing.T) {
	h, _ := newTestHandler(t)
	cookie := unlockCookie(t, h, `{"pin":"1313"}`)

	rec := doJSON(t, h, http.MethodPost, "/api/customers",
		`{"name":"Mike Chen","vehicles":[{"make":"Honda","model":"CR-V","year":"2020"}]}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var customer struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customer))
	require.NotEmpty(t, customer.ID)

	rec = doJSON(t, h, http.MethodPost, "/api/jobs",
		`{"customerId":"`+customer.ID+`","vehicleIndex":0}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var job struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "pending", job.Status)

	// completing before scheduling is a state conflict, not a bad request
	rec = doJSON(t, h, http.MethodPost, "/api/jobs/"+job.ID+"/complete", `{}`, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	for _, size := range []string{"26%22", "17%22", "12%22"} {
		rec = doJSON(t, h, http.MethodPut, "/api/inventory/"+size, `{"qty":"2"}`, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/jobs/"+job.ID+"/schedule", `{"date":"2026-09-01"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/jobs/"+job.ID+"/complete", `{"price":"60"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "completed", job.Status)

	rec = doJSON(t, h, http.MethodPost, "/api/jobs/"+job.ID+"/schedule", `{"date":"2026-09-02"}`, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code, "completed jobs are terminal")
}

func TestSetStockRejectsNonNumericQuantity(t *testing.T) {
	h, _ := newTestHandler(t)
	cookie := unlockCookie(t, h, `{"pin":"1313"}`)

	rec := doJSON(t, h, http.MethodPut, `/api/inventory/26%22`, `{"qty":"lots"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPut, `/api/inventory/26%22`, `{"qty":"-3"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveAndSuggestEndpoints(t *testing.T) {
	h, _ := newTestHandler(t)
	cookie := unlockCookie(t, h, `{"pin":"1313"}`)

	rec := doJSON(t, h, http.MethodPost, "/api/vehicles/resolve", `{"make":"Ford","model":"F250"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var resolved struct {
		WiperSizes *struct {
			Driver string `json:"driver"`
		} `json:"wiperSizes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	require.NotNil(t, resolved.WiperSizes, "F250 normalizes to F-250")

	rec = doJSON(t, h, http.MethodGet, "/api/makes/Toyota/models?q=cor", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var models struct {
		Models []string `json:"models"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &models))
	assert.Contains(t, models.Models, "Corolla")
}

func TestBadJSONBody(t *testing.T) {
	h, _ := newTestHandler(t)
	cookie := unlockCookie(t, h, `{"pin":"1313"}`)

	rec := doJSON(t, h, http.MethodPost, "/api/expenses", `{not json`, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error     string `json:"error"`
		Code      string `json:"code"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "BAD_REQUEST", envelope.Code)
	assert.Contains(t, envelope.Error, "invalid JSON body")
	assert.NotEmpty(t, envelope.RequestID)
}

func TestLockClearsSession(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/api/auth/lock", "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "auth_token" {
			assert.Equal(t, -1, c.MaxAge)
			return
		}
	}
	t.Fatal("expected cleared auth_token cookie")
}
