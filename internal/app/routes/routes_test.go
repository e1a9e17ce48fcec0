package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"citizens-voice-http-service/internal/app/middleware"
	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/infrastructure/config"
	"citizens-voice-http-service/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// each router gets its own client IP so the shared rate-limiter buckets
// never bleed between tests
var (
	routerSeq     int
	currentTestIP string
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.FlushCache()
	routerSeq++
	currentTestIP = fmt.Sprintf("10.0.%d.1:51000", routerSeq)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.AdminUser{},
		&models.Struggle{},
		&models.Report{},
		&models.Resource{},
		&models.Community{},
		&models.MinistryRecord{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	cfg := &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminEmail:    "admin@citizensvoice.gy",
		DefaultAdminPassword: "admin-secret",
		StorageDriver:        "local",
		UploadDir:            t.TempDir(),
		PublicBaseURL:        "http://localhost/uploads",
		RedisHost:            "localhost",
		RedisPort:            "0",
	}

	store, err := storage.NewObjectStore(cfg)
	if err != nil {
		t.Fatalf("failed to create object store: %v", err)
	}

	return SetupRouter(db, cfg, store), db, cfg
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = currentTestIP
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email string) (token string, userID uint) {
	t.Helper()
	w := do(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":        email,
		"password":     "secret123",
		"display_name": "Test Citizen",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data services.LoginResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding register response: %v", err)
	}
	return envelope.Data.Token, envelope.Data.UserID
}

func loginUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	var envelope struct {
		Data services.LoginResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	return envelope.Data.Token
}

func TestFunctionCollectionEnvelope(t *testing.T) {
	r, db, _ := newTestRouter(t)

	for i := 0; i < 2; i++ {
		db.Create(&models.Struggle{Headline: fmt.Sprintf("Struggle %d", i), Category: models.CategoryHealth, Location: "Georgetown"})
		time.Sleep(2 * time.Millisecond)
	}

	w := do(r, http.MethodGet, "/functions/struggles", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /functions/struggles returned %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "authorization, x-client-info, apikey, content-type" {
		t.Errorf("Allow-Headers = %q", got)
	}

	var envelope map[string][]models.Struggle
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	struggles, ok := envelope["struggles"]
	if !ok {
		t.Fatalf("envelope key missing: %s", w.Body.String())
	}
	if len(struggles) != 2 {
		t.Fatalf("got %d struggles, want 2", len(struggles))
	}
	if struggles[0].Headline != "Struggle 1" {
		t.Errorf("feed not newest first: %q", struggles[0].Headline)
	}
}

func TestFunctionPreflight(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodOptions, "/functions/resources", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("OPTIONS returned %d, want 200", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("preflight body = %q, want empty", w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestFunctionMethodNotAllowed(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/functions/struggles", "", gin.H{"x": 1})
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST returned %d, want 405", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding 405 body: %v", err)
	}
	if body["error"] != "Method not allowed" {
		t.Errorf(`error = %q, want "Method not allowed"`, body["error"])
	}
}

func TestLiveResourceSnapshotEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/functions/resources/live", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /functions/resources/live returned %d: %s", w.Code, w.Body.String())
	}

	var snapshot services.LiveResourceSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if b := snapshot.OilProduction.DailyBarrels; b < 300000 || b >= 350000 {
		t.Errorf("daily_barrels = %d, out of range", b)
	}
	if snapshot.LastUpdated.IsZero() {
		t.Error("last_updated missing")
	}
	if len(snapshot.Blocks) != 3 {
		t.Errorf("got %d blocks, want 3", len(snapshot.Blocks))
	}
}

func TestReportLifecycleOverHTTP(t *testing.T) {
	r, db, _ := newTestRouter(t)

	citizenToken, _ := registerUser(t, r, "citizen@example.gy")
	_, adminID := registerUser(t, r, "admin@example.gy")

	// grant admin capability, then log in again so the token carries the role
	if err := db.Create(&models.AdminUser{UserID: adminID}).Error; err != nil {
		t.Fatalf("granting admin: %v", err)
	}
	adminToken := loginUser(t, r, "admin@example.gy")

	// submission requires authentication
	w := do(r, http.MethodPost, "/api/reports", "", gin.H{"title": "t", "description": "d", "category": "Health"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated submission returned %d, want 401", w.Code)
	}

	w = do(r, http.MethodPost, "/api/reports", citizenToken, gin.H{
		"title":       "Leaking koker at Ruimveldt",
		"description": "Water floods the street at high tide",
		"category":    models.CategoryInfrastructure,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submission returned %d: %s", w.Code, w.Body.String())
	}
	var submitted struct {
		Data models.Report `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("decoding submission: %v", err)
	}
	if submitted.Data.Status != models.ReportStatusPending {
		t.Errorf("status = %q, want pending", submitted.Data.Status)
	}

	// a citizen token cannot moderate
	path := fmt.Sprintf("/api/admin/reports/%d", submitted.Data.ID)
	w = do(r, http.MethodPut, path, citizenToken, gin.H{"status": "approved"})
	if w.Code != http.StatusForbidden {
		t.Errorf("citizen moderation returned %d, want 403", w.Code)
	}

	w = do(r, http.MethodPut, path, adminToken, gin.H{"status": "approved"})
	if w.Code != http.StatusOK {
		t.Fatalf("moderation returned %d: %s", w.Code, w.Body.String())
	}

	// approval published a verified struggle
	var struggle models.Struggle
	if err := db.First(&struggle).Error; err != nil {
		t.Fatalf("struggle missing after approval: %v", err)
	}
	if !struggle.Verified || struggle.Headline != "Leaking koker at Ruimveldt" {
		t.Errorf("unexpected struggle: %+v", struggle)
	}

	// a second decision conflicts and spawns nothing
	w = do(r, http.MethodPut, path, adminToken, gin.H{"status": "approved"})
	if w.Code != http.StatusConflict {
		t.Errorf("second decision returned %d, want 409", w.Code)
	}
	var count int64
	db.Model(&models.Struggle{}).Count(&count)
	if count != 1 {
		t.Errorf("struggle count = %d, want 1", count)
	}
}

func TestAdminRevocationTakesEffectOnLiveToken(t *testing.T) {
	r, db, _ := newTestRouter(t)

	_, adminID := registerUser(t, r, "admin@example.gy")
	if err := db.Create(&models.AdminUser{UserID: adminID}).Error; err != nil {
		t.Fatalf("granting admin: %v", err)
	}
	adminToken := loginUser(t, r, "admin@example.gy")

	w := do(r, http.MethodGet, "/api/admin/reports", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin list returned %d: %s", w.Code, w.Body.String())
	}

	// revoke while the token is still valid
	if err := db.Where("user_id = ?", adminID).Delete(&models.AdminUser{}).Error; err != nil {
		t.Fatalf("revoking admin: %v", err)
	}

	w = do(r, http.MethodGet, "/api/admin/reports", adminToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("revoked admin returned %d, want 403", w.Code)
	}
}

func TestProfileAutoCreateOverHTTP(t *testing.T) {
	r, _, _ := newTestRouter(t)
	token, _ := registerUser(t, r, "citizen@example.gy")

	w := do(r, http.MethodGet, "/api/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/profile returned %d: %s", w.Code, w.Body.String())
	}
	var envelope struct {
		Data models.UserProfile `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if envelope.Data.DisplayName != "Test Citizen" {
		t.Errorf("display name = %q", envelope.Data.DisplayName)
	}

	w = do(r, http.MethodPut, "/api/profile", token, gin.H{"district": "Region 6"})
	if w.Code != http.StatusOK {
		t.Fatalf("PUT /api/profile returned %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding updated profile: %v", err)
	}
	if envelope.Data.District != "Region 6" {
		t.Errorf("district = %q", envelope.Data.District)
	}
}

func TestMinistryUpdateInvalidatesCache(t *testing.T) {
	r, db, _ := newTestRouter(t)

	record := models.MinistryRecord{MinistryID: "health", Name: "Ministry of Health"}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seeding ministry: %v", err)
	}

	_, adminID := registerUser(t, r, "moh-admin@example.gy")
	if err := db.Create(&models.AdminUser{UserID: adminID}).Error; err != nil {
		t.Fatalf("granting admin: %v", err)
	}
	adminToken := loginUser(t, r, "moh-admin@example.gy")

	// prime the cached directory
	w := do(r, http.MethodGet, "/api/ministries", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/ministries returned %d: %s", w.Code, w.Body.String())
	}

	path := fmt.Sprintf("/api/admin/ministries/%d", record.ID)
	w = do(r, http.MethodPut, path, adminToken, gin.H{"name": "Ministry of Health and Wellness"})
	if w.Code != http.StatusOK {
		t.Fatalf("ministry update returned %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/ministries", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/ministries after update returned %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ministry of Health and Wellness") {
		t.Errorf("directory still serves the pre-update record: %s", w.Body.String())
	}
}

func TestMinistryUpdateUnknownRecord(t *testing.T) {
	r, db, _ := newTestRouter(t)

	_, adminID := registerUser(t, r, "ghost-admin@example.gy")
	if err := db.Create(&models.AdminUser{UserID: adminID}).Error; err != nil {
		t.Fatalf("granting admin: %v", err)
	}
	adminToken := loginUser(t, r, "ghost-admin@example.gy")

	w := do(r, http.MethodPut, "/api/admin/ministries/9999", adminToken, gin.H{"name": "Nowhere"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown ministry returned %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestTokenWithoutUserIDClaimRejected(t *testing.T) {
	r, _, cfg := newTestRouter(t)

	// validly signed, but the user_id claim is absent
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecretKey))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	w := do(r, http.MethodGet, "/api/profile", signed, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("claimless token returned %d, want 403: %s", w.Code, w.Body.String())
	}
}

func TestModerationQueuePaginates(t *testing.T) {
	r, db, _ := newTestRouter(t)

	token, _ := registerUser(t, r, "reporter@example.gy")
	for i := 0; i < 3; i++ {
		w := do(r, http.MethodPost, "/api/reports", token, gin.H{
			"title":       fmt.Sprintf("Pothole %d", i),
			"description": "Deep pothole on the main road",
			"category":    models.CategoryInfrastructure,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("submission %d returned %d: %s", i, w.Code, w.Body.String())
		}
	}

	_, adminID := registerUser(t, r, "queue-admin@example.gy")
	if err := db.Create(&models.AdminUser{UserID: adminID}).Error; err != nil {
		t.Fatalf("granting admin: %v", err)
	}
	adminToken := loginUser(t, r, "queue-admin@example.gy")

	w := do(r, http.MethodGet, "/api/admin/reports?page=1&page_size=2", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("queue page returned %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data struct {
			Reports    []models.Report         `json:"reports"`
			Pagination models.PaginationResult `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding queue page: %v", err)
	}
	if len(envelope.Data.Reports) != 2 {
		t.Errorf("page holds %d reports, want 2", len(envelope.Data.Reports))
	}
	if envelope.Data.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3", envelope.Data.Pagination.Total)
	}
}
