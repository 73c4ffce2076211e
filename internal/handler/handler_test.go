package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/greenpark/cms/internal/config"
	"github.com/greenpark/cms/internal/db"
)

const (
	testAdminEmail    = "admin@greenparkpeyzaj.com"
	testAdminPassword = "admin-password"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func newTestAPI(t *testing.T, gdb *gorm.DB) *API {
	t.Helper()

	cfg := &config.Config{
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
	}
	return NewAPI(gdb, nil, cfg)
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}, decorate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if decorate != nil {
		decorate(req)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func withAdminCookie(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: "true"})
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %q", w.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}
