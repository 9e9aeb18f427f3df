package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/corebeautylab/salon-scheduler/internal/config"
	dbpkg "github.com/corebeautylab/salon-scheduler/internal/db"
	"github.com/corebeautylab/salon-scheduler/internal/middleware"
	"github.com/corebeautylab/salon-scheduler/internal/routes"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		ServerPort: "0",
		Timezone:   "UTC",
	}

	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, nil, zerolog.Nop())

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/pin", "", gin.H{"pin": "1234", "name": "Giulia"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"pin": "1234"})
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// =============================================================================
// Auth
// =============================================================================

func TestAuth_PinSetupAndLogin(t *testing.T) {
	r, _ := setupServer(t)

	// Short PINs are rejected before touching the store.
	w := doJSON(t, r, http.MethodPost, "/api/auth/pin", "", gin.H{"pin": "12"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/pin", "", gin.H{"pin": "1234", "name": "Giulia"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Single tenant: a second profile is refused.
	w = doJSON(t, r, http.MethodPost, "/api/auth/pin", "", gin.H{"pin": "9999"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"pin": "0000"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"pin": "1234"})
	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
}

func TestAuth_SecuredRoutesRequireToken(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =============================================================================
// End-to-end flow
// =============================================================================

func TestFlow_ScheduleAndComplete(t *testing.T) {
	r, _ := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name": "Manicure", "category": "HANDS", "duration_min": 45, "price": 20.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	svc := decode(t, w)["data"].(map[string]any)
	svcID := uint(svc["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/clients", token, gin.H{"name": "Maria Rossi"})
	require.Equal(t, http.StatusCreated, w.Code)
	client := decode(t, w)["data"].(map[string]any)
	clientID := uint(client["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_id":  clientID,
		"service_id": svcID,
		"start":      "2024-06-10T10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	ap := decode(t, w)["data"].(map[string]any)
	apID := uint(ap["id"].(float64))
	assert.Equal(t, float64(45), ap["duration_min"])
	assert.Equal(t, false, ap["completed"])

	w = doJSON(t, r, http.MethodGet, "/api/appointments?date=2024-06-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	assert.Equal(t, float64(1), list["total"])

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/appointments/%d", apID), token, gin.H{
		"completed": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/stats?period=today", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestFlow_UnknownReferenceRejected(t *testing.T) {
	r, _ := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_id":  999,
		"service_id": 999,
		"start":      "2024-06-10T10:00",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlow_ClientDeleteCascades(t *testing.T) {
	r, _ := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name": "Manicure", "category": "HANDS", "duration_min": 45, "price": 20.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	svcID := uint(decode(t, w)["data"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/clients", token, gin.H{"name": "Maria Rossi"})
	require.Equal(t, http.StatusCreated, w.Code)
	clientID := uint(decode(t, w)["data"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_id": clientID, "service_id": svcID, "start": "2024-06-10T10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/clients/%d", clientID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/appointments?date=2024-06-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["total"])
}

func TestStoreFailure_LoggedAndGeneric(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", Timezone: "UTC"}

	var buf bytes.Buffer
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, nil, zerolog.New(&buf))
	token := login(t, r)

	// Kill the store out from under the handler.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := doJSON(t, r, http.MethodGet, "/api/clients", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The caller gets the generic code; the cause lands in the log.
	body := decode(t, w)
	assert.Equal(t, "failed_to_list_clients", body["error_code"])
	assert.Contains(t, buf.String(), "client list failed")
}

func TestFlow_ScheduleViews(t *testing.T) {
	r, _ := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/schedule/day?date=2024-06-10", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/schedule/week?anchor=2024-06-12", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/schedule/slot?date=2024-06-10&hour=10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	slot := decode(t, w)["data"].(map[string]any)
	assert.Contains(t, slot["start"], "10:00")

	// Off-hours slot requests are refused.
	w = doJSON(t, r, http.MethodGet, "/api/schedule/slot?date=2024-06-10&hour=3", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
